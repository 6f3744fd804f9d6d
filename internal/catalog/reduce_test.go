package catalog_test

import (
	"testing"

	"lisztnup/internal/catalog"
)

func recordings(n int) []catalog.Recording {
	recs := make([]catalog.Recording, n)
	for i := range recs {
		recs[i] = catalog.Recording{GID: "r", Name: "rec", DeezerID: int64(i + 1)}
	}
	return recs
}

func TestAnnotateCountsSumsSubtree(t *testing.T) {
	tree := &catalog.Work{
		GID:        "root",
		Recordings: recordings(2),
		Subworks: []*catalog.Work{
			{GID: "a", Recordings: recordings(3)},
			{
				GID:        "b",
				Recordings: recordings(1),
				Subworks: []*catalog.Work{
					{GID: "b1", Recordings: recordings(4)},
					{GID: "b2"},
				},
			},
		},
	}

	catalog.AnnotateCounts(tree)

	// Root recording count covers every node's own recordings.
	if tree.TotalRecordings != 2+3+1+4 {
		t.Fatalf("total recordings: got %d", tree.TotalRecordings)
	}
	// Descendant count is the subtree node count minus the root itself.
	if tree.TotalSubworks != 4 {
		t.Fatalf("total subworks: got %d", tree.TotalSubworks)
	}
	if got := tree.Subworks[1].TotalSubworks; got != 2 {
		t.Fatalf("internal node descendant count: got %d", got)
	}
	if got := tree.Subworks[0].TotalRecordings; got != 3 {
		t.Fatalf("leaf recording count: got %d", got)
	}
}

func TestFlattenPartsReturnsQualifyingLeaves(t *testing.T) {
	tree := &catalog.Work{
		GID: "root",
		Subworks: []*catalog.Work{
			{GID: "a", Recordings: recordings(3)},
			{GID: "b", Recordings: recordings(5)},
			{GID: "c", Recordings: recordings(4)},
		},
	}

	parts, dropped := catalog.FlattenParts(tree, 3)
	if dropped != 0 {
		t.Fatalf("expected no drops, got %d", dropped)
	}
	// Every qualifying leaf survives, unchanged in order.
	want := []string{"a", "b", "c"}
	if len(parts) != len(want) {
		t.Fatalf("expected %d parts, got %d", len(want), len(parts))
	}
	for i, gid := range want {
		if parts[i].GID != gid {
			t.Fatalf("part %d: got %q want %q", i, parts[i].GID, gid)
		}
	}
}

func TestFlattenPartsDropsThinLeaves(t *testing.T) {
	tree := &catalog.Work{
		GID: "root",
		Subworks: []*catalog.Work{
			{GID: "a", Recordings: recordings(1)},
			{GID: "b", Recordings: recordings(5)},
		},
	}

	parts, dropped := catalog.FlattenParts(tree, 3)
	if len(parts) != 1 || parts[0].GID != "b" {
		t.Fatalf("unexpected parts: %+v", parts)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped leaf, got %d", dropped)
	}
}

func TestFlattenPartsPromotesInternalNode(t *testing.T) {
	// Sub-division too granular to qualify, but the undivided recordings of
	// the internal node itself are sufficient.
	tree := &catalog.Work{
		GID:        "root",
		Recordings: recordings(6),
		Subworks: []*catalog.Work{
			{GID: "a", Recordings: recordings(1)},
			{GID: "b", Recordings: recordings(2)},
		},
	}

	parts, dropped := catalog.FlattenParts(tree, 3)
	if len(parts) != 1 || parts[0].GID != "root" {
		t.Fatalf("expected promoted root part, got %+v", parts)
	}
	if dropped != 2 {
		t.Fatalf("expected 2 dropped leaves, got %d", dropped)
	}
}

func TestFlattenPartsNoPromotionWhenChildrenSurvive(t *testing.T) {
	tree := &catalog.Work{
		GID:        "root",
		Recordings: recordings(10),
		Subworks: []*catalog.Work{
			{GID: "a", Recordings: recordings(3)},
		},
	}

	parts, _ := catalog.FlattenParts(tree, 3)
	if len(parts) != 1 || parts[0].GID != "a" {
		t.Fatalf("expected child part only, got %+v", parts)
	}
}

func TestFlattenPartsLeafRoot(t *testing.T) {
	leaf := &catalog.Work{GID: "solo", Recordings: recordings(3)}
	parts, dropped := catalog.FlattenParts(leaf, 3)
	if len(parts) != 1 || parts[0] != leaf {
		t.Fatalf("expected the leaf itself, got %+v", parts)
	}
	if dropped != 0 {
		t.Fatalf("unexpected drops: %d", dropped)
	}

	thin := &catalog.Work{GID: "thin", Recordings: recordings(2)}
	parts, dropped = catalog.FlattenParts(thin, 3)
	if len(parts) != 0 || dropped != 1 {
		t.Fatalf("thin leaf should drop: parts=%v dropped=%d", parts, dropped)
	}
}
