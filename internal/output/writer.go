package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"lisztnup/internal/config"
	"lisztnup/internal/curate"
	"lisztnup/internal/logging"
)

const unresolvedHeader = "List of works in the final output whose types could not be resolved by defined rules:"

// Writer persists curation artifacts. A file lock next to the catalog keeps
// two concurrent runs from interleaving partial writes.
type Writer struct {
	logger         *slog.Logger
	lock           *flock.Flock
	catalogPath    string
	unresolvedPath string
}

// NewWriter builds a Writer targeting the configured artifact paths.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Writer{
		logger:         logging.NewComponentLogger(logger, "output"),
		lock:           flock.New(cfg.Paths.OutputFile + ".lock"),
		catalogPath:    cfg.Paths.OutputFile,
		unresolvedPath: cfg.Paths.UnresolvedLog,
	}
}

// WriteCatalog writes the catalog JSON atomically via a temp file rename.
func (w *Writer) WriteCatalog(catalog *curate.Catalog) error {
	unlock, err := w.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')
	if err := writeAtomic(w.catalogPath, data); err != nil {
		return err
	}
	w.logger.Info("wrote catalog",
		logging.String("path", w.catalogPath),
		logging.Int("bytes", len(data)))
	return nil
}

// WriteUnresolved writes the unresolved-types log. With no messages the log
// is removed so a stale one never outlives the run that resolved it.
func (w *Writer) WriteUnresolved(messages []string) error {
	unlock, err := w.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if len(messages) == 0 {
		if err := os.Remove(w.unresolvedPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove unresolved log: %w", err)
		}
		return nil
	}

	var b strings.Builder
	b.WriteString(unresolvedHeader + "\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	for _, message := range messages {
		b.WriteString(message + "\n")
	}
	if err := writeAtomic(w.unresolvedPath, []byte(b.String())); err != nil {
		return err
	}
	w.logger.Info("wrote unresolved-types log",
		logging.String("path", w.unresolvedPath),
		logging.Int("entries", len(messages)))
	return nil
}

func (w *Writer) acquire() (func(), error) {
	ok, err := w.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output locked by another curation run: %s", w.lock.Path())
	}
	return func() {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}, nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
