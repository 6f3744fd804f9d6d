package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// ForestComposer and the types below mirror the extraction wire format so
// tests can write realistic input files without depending on catalog
// internals.
type ForestComposer struct {
	GID       string       `json:"gid"`
	Name      string       `json:"name"`
	BirthYear *int         `json:"birth_year"`
	DeathYear *int         `json:"death_year"`
	Works     []ForestWork `json:"works"`
}

type ForestWork struct {
	GID        string            `json:"gid"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	BeginYear  *int              `json:"begin_year"`
	EndYear    *int              `json:"end_year"`
	Recordings []ForestRecording `json:"recordings"`
	Subworks   []ForestWork      `json:"subworks"`
}

type ForestRecording struct {
	GID      string `json:"gid"`
	Name     string `json:"name"`
	ISRC     string `json:"isrc"`
	Label    string `json:"label"`
	DeezerID int64  `json:"deezerId"`
}

// WriteForest marshals composers into path in the wire format.
func WriteForest(t testing.TB, path string, composers ...ForestComposer) {
	t.Helper()
	data, err := json.MarshalIndent(composers, "", "  ")
	if err != nil {
		t.Fatalf("marshal forest: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir forest dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write forest: %v", err)
	}
}

// Year returns a pointer for optional year fields.
func Year(y int) *int {
	return &y
}

// Recordings generates n recordings with sequential track IDs starting at
// base, all on the given label.
func Recordings(base int64, n int, label string) []ForestRecording {
	recs := make([]ForestRecording, n)
	for i := range recs {
		id := base + int64(i)
		recs[i] = ForestRecording{
			GID:      fmt.Sprintf("rec-%d", id),
			Name:     fmt.Sprintf("Recording %d", id),
			Label:    label,
			DeezerID: id,
		}
	}
	return recs
}
