package output_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lisztnup/internal/config"
	"lisztnup/internal/curate"
	"lisztnup/internal/output"
)

func testWriter(t *testing.T) (*output.Writer, *config.Config) {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.OutputFile = filepath.Join(dir, "lisztnup.json")
	cfg.Paths.UnresolvedLog = filepath.Join(dir, "unresolved_types.txt")
	return output.NewWriter(&cfg, nil), &cfg
}

func sampleCatalog() *curate.Catalog {
	birth := 1813
	return &curate.Catalog{
		Composers: []curate.Composer{
			{GID: "c1", Name: "Verdi", BirthYear: &birth},
		},
		Works: map[string][]*curate.Work{
			"opera": {
				{
					GID:      "w1",
					Composer: "c1",
					Name:     "La traviata",
					Type:     "opera",
					Score:    4.12,
					Parts: []curate.Part{
						{Name: "Prelude", Deezer: []int64{101, 102}, Score: 100},
					},
				},
			},
		},
	}
}

func TestWriteCatalogRoundTrips(t *testing.T) {
	w, cfg := testWriter(t)
	if err := w.WriteCatalog(sampleCatalog()); err != nil {
		t.Fatalf("WriteCatalog: %v", err)
	}

	data, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	var decoded curate.Catalog
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Composers) != 1 || decoded.Composers[0].Name != "Verdi" {
		t.Fatalf("composers: %+v", decoded.Composers)
	}
	works := decoded.Works["opera"]
	if len(works) != 1 || works[0].Name != "La traviata" {
		t.Fatalf("works: %+v", decoded.Works)
	}
	if len(works[0].Parts) != 1 || len(works[0].Parts[0].Deezer) != 2 {
		t.Fatalf("parts: %+v", works[0].Parts)
	}
	if works[0].BeginYear != nil {
		t.Fatalf("expected null begin_year, got %v", *works[0].BeginYear)
	}
}

func TestWriteCatalogFieldNames(t *testing.T) {
	w, cfg := testWriter(t)
	if err := w.WriteCatalog(sampleCatalog()); err != nil {
		t.Fatalf("WriteCatalog: %v", err)
	}
	data, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	text := string(data)
	for _, field := range []string{
		`"composers"`, `"works"`, `"gid"`, `"birth_year"`, `"death_year"`,
		`"begin_year"`, `"end_year"`, `"score"`, `"parts"`, `"deezer"`,
	} {
		if !strings.Contains(text, field) {
			t.Fatalf("missing field %s in output:\n%s", field, text)
		}
	}
}

func TestWriteCatalogReplacesExisting(t *testing.T) {
	w, cfg := testWriter(t)
	if err := os.WriteFile(cfg.Paths.OutputFile, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteCatalog(sampleCatalog()); err != nil {
		t.Fatalf("WriteCatalog: %v", err)
	}
	data, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Fatal("stale content survived")
	}
}

func TestWriteUnresolved(t *testing.T) {
	w, cfg := testWriter(t)
	messages := []string{
		"'Adagio in B minor' (Original Type: Unknown)",
		"'Fantasia' (Original Type: Unknown)",
	}
	if err := w.WriteUnresolved(messages); err != nil {
		t.Fatalf("WriteUnresolved: %v", err)
	}

	data, err := os.ReadFile(cfg.Paths.UnresolvedLog)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines: %d\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "List of works in the final output") {
		t.Fatalf("header: %s", lines[0])
	}
	if lines[1] != strings.Repeat("=", 80) {
		t.Fatalf("separator: %s", lines[1])
	}
	if lines[2] != messages[0] || lines[3] != messages[1] {
		t.Fatalf("body: %v", lines[2:])
	}
}

func TestWriteUnresolvedEmptyRemovesStaleLog(t *testing.T) {
	w, cfg := testWriter(t)
	if err := os.WriteFile(cfg.Paths.UnresolvedLog, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteUnresolved(nil); err != nil {
		t.Fatalf("WriteUnresolved: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.UnresolvedLog); !os.IsNotExist(err) {
		t.Fatalf("stale log still present: %v", err)
	}
}
