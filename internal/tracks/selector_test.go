package tracks_test

import (
	"os"
	"path/filepath"
	"testing"

	"lisztnup/internal/catalog"
	"lisztnup/internal/tracks"
)

var preference = []string{"Deutsche Grammophon", "Decca"}

func rec(id int64, name, label string) catalog.Recording {
	return catalog.Recording{GID: "r", Name: name, Label: label, DeezerID: id}
}

func TestSelectPrefersConfiguredLabels(t *testing.T) {
	s := tracks.NewSelector(preference, nil, 5)
	recordings := []catalog.Recording{
		rec(1, "recording one", "Naxos"),
		rec(2, "recording two", "Decca Classics"),
		rec(3, "recording three", "Deutsche Grammophon"),
		rec(4, "recording four", ""),
		rec(5, "recording five", "Sony"),
		rec(6, "recording six", ""),
	}

	got := s.Select(recordings)
	// 6 usable recordings cap selection at 3; DG outranks Decca.
	if len(got) != 3 {
		t.Fatalf("expected 3 IDs, got %v", got)
	}
	if got[0] != 3 || got[1] != 2 {
		t.Fatalf("label preference order violated: %v", got)
	}
}

func TestSelectHalfCap(t *testing.T) {
	s := tracks.NewSelector(nil, nil, 5)

	// ceil(1/2) = 1
	if got := s.Select([]catalog.Recording{rec(1, "a", "")}); len(got) != 1 {
		t.Fatalf("single recording: %v", got)
	}
	// ceil(3/2) = 2
	three := []catalog.Recording{rec(1, "a", ""), rec(2, "b", ""), rec(3, "c", "")}
	if got := s.Select(three); len(got) != 2 {
		t.Fatalf("three recordings: %v", got)
	}
	// cap still bounded by max per part
	many := make([]catalog.Recording, 0, 20)
	for i := int64(1); i <= 20; i++ {
		many = append(many, rec(i, "name", ""))
	}
	if got := s.Select(many); len(got) != 5 {
		t.Fatalf("twenty recordings should cap at 5: %v", got)
	}
}

func TestSelectPrefersLongerNamesWithinTier(t *testing.T) {
	s := tracks.NewSelector(nil, nil, 5)
	recordings := []catalog.Recording{
		rec(1, "short", ""),
		rec(2, "a considerably longer recording title", ""),
		rec(3, "medium length", ""),
	}
	got := s.Select(recordings)
	if len(got) != 2 || got[0] != 2 {
		t.Fatalf("longest name should be tried first: %v", got)
	}
}

func TestSelectSkipsExcludedAndMissingIDs(t *testing.T) {
	excluded := map[int64]struct{}{7: {}}
	s := tracks.NewSelector(nil, excluded, 5)
	recordings := []catalog.Recording{
		rec(7, "banned", "Decca"),
		rec(0, "no id", "Decca"),
		rec(9, "fine", ""),
	}
	got := s.Select(recordings)
	if len(got) != 1 || got[0] != 9 {
		t.Fatalf("expected only ID 9, got %v", got)
	}
}

func TestSelectAllExcluded(t *testing.T) {
	s := tracks.NewSelector(nil, map[int64]struct{}{1: {}}, 5)
	if got := s.Select([]catalog.Recording{rec(1, "banned", "")}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestLoadExcludedIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded_deezer_ids")
	if err := os.WriteFile(path, []byte("101\n\n  202  \n303\n"), 0o644); err != nil {
		t.Fatalf("write exclusions: %v", err)
	}

	ids, err := tracks.LoadExcludedIDs(path)
	if err != nil {
		t.Fatalf("LoadExcludedIDs: %v", err)
	}
	for _, want := range []int64{101, 202, 303} {
		if _, ok := ids[want]; !ok {
			t.Fatalf("missing ID %d in %v", want, ids)
		}
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 IDs, got %d", len(ids))
	}
}

func TestLoadExcludedIDsMissingFile(t *testing.T) {
	ids, err := tracks.LoadExcludedIDs(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty set, got %v", ids)
	}
}

func TestLoadExcludedIDsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded_deezer_ids")
	if err := os.WriteFile(path, []byte("101\nnot-a-number\n"), 0o644); err != nil {
		t.Fatalf("write exclusions: %v", err)
	}
	if _, err := tracks.LoadExcludedIDs(path); err == nil {
		t.Fatal("expected parse error")
	}
}
