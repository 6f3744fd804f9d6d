package curate_test

import (
	"reflect"
	"testing"

	"lisztnup/internal/curate"
)

func TestGroupedPreservesFirstAppearanceOrder(t *testing.T) {
	g := curate.NewGrouped()
	for _, w := range []*curate.Work{
		{GID: "w1", Type: "opera"},
		{GID: "w2", Type: "piano"},
		{GID: "w3", Type: "opera"},
		{GID: "w4", Type: "vocal"},
	} {
		g.Add(w)
	}

	if !reflect.DeepEqual(g.Order, []string{"opera", "piano", "vocal"}) {
		t.Fatalf("order: %v", g.Order)
	}

	var visited []string
	g.Walk(func(category string, w *curate.Work) {
		visited = append(visited, category+"/"+w.GID)
	})
	want := []string{"opera/w1", "opera/w3", "piano/w2", "vocal/w4"}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("walk: %v", visited)
	}
}

func TestGroupedReplaceDropsEmptiedCategory(t *testing.T) {
	g := curate.NewGrouped()
	g.Add(&curate.Work{GID: "w1", Type: "opera"})
	g.Add(&curate.Work{GID: "w2", Type: "piano"})

	g.Replace("opera", nil)

	if !reflect.DeepEqual(g.Order, []string{"piano"}) {
		t.Fatalf("order after replace: %v", g.Order)
	}
	if _, ok := g.ByCategory["opera"]; ok {
		t.Fatal("emptied category still present")
	}
}

func TestCatalogAllWorks(t *testing.T) {
	c := &curate.Catalog{
		Works: map[string][]*curate.Work{
			"opera": {{GID: "w1"}, {GID: "w2"}},
			"piano": {{GID: "w3"}},
		},
	}
	if got := len(c.AllWorks()); got != 3 {
		t.Fatalf("all works: %d", got)
	}
}
