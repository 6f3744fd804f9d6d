package testsupport

import (
	"path/filepath"
	"testing"

	"lisztnup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The curator exclusion and override lists are cleared so fixtures never
// collide with real composer names; add them back per test when needed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	cfg := config.Default()
	cfg.Paths.DataDir = dataDir
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.InputFile = filepath.Join(dataDir, "musicbrainz.json")
	cfg.Paths.OutputFile = filepath.Join(dataDir, "lisztnup.json")
	cfg.Paths.UnresolvedLog = filepath.Join(dataDir, "unresolved_types.txt")
	cfg.Paths.ExcludedTracksFile = filepath.Join(dataDir, "excluded_deezer_ids")
	cfg.Exclusions.Composers = nil
	cfg.Exclusions.Works = nil
	cfg.Overrides.WSS = nil
	cfg.Overrides.ComposerTypes = nil

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithExcludedComposers sets the composer exclusion list.
func WithExcludedComposers(names ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Exclusions.Composers = names
	}
}

// WithWSSOverride pins a work's significance score.
func WithWSSOverride(gid string, wss float64) ConfigOption {
	return func(cfg *config.Config) {
		if cfg.Overrides.WSS == nil {
			cfg.Overrides.WSS = make(map[string]float64)
		}
		cfg.Overrides.WSS[gid] = wss
	}
}
