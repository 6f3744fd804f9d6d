package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lisztnup/internal/catalog"
)

const forestFixture = `[
  {
    "gid": "c1",
    "name": "Beethoven, Ludwig van",
    "birth_year": 1770,
    "death_year": 1827,
    "works": [
      {
        "gid": "w1",
        "name": "Symphony No. 5",
        "type": "Symphony",
        "begin_year": 1804,
        "end_year": 1808,
        "recordings": [],
        "subworks": [
          {
            "gid": "w1-1",
            "name": "I. Allegro con brio",
            "begin_year": null,
            "end_year": null,
            "recordings": [
              {"gid": "r1", "name": "Allegro con brio", "isrc": "X1", "label": "Decca", "deezerId": 101}
            ],
            "subworks": [
              {
                "gid": "w1-1-1",
                "name": "Exposition",
                "type": "Movement",
                "begin_year": null,
                "end_year": null,
                "recordings": [],
                "subworks": []
              }
            ]
          }
        ]
      },
      {
        "gid": "w2",
        "name": "Bagatelle",
        "begin_year": null,
        "end_year": null,
        "recordings": [],
        "subworks": []
      }
    ]
  }
]`

func writeForest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "musicbrainz.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write forest: %v", err)
	}
	return path
}

func TestLoadForestInheritsTypes(t *testing.T) {
	composers, err := catalog.LoadForest(writeForest(t, forestFixture), 32)
	if err != nil {
		t.Fatalf("LoadForest: %v", err)
	}
	if len(composers) != 1 {
		t.Fatalf("expected 1 composer, got %d", len(composers))
	}

	composer := composers[0]
	if composer.BirthYear == nil || *composer.BirthYear != 1770 {
		t.Fatalf("unexpected birth year: %v", composer.BirthYear)
	}

	symphony := composer.Works[0]
	if symphony.Type != "Symphony" {
		t.Fatalf("root type: got %q", symphony.Type)
	}
	movement := symphony.Subworks[0]
	if movement.Type != "Symphony" {
		t.Fatalf("untyped child should inherit parent type, got %q", movement.Type)
	}
	// A declared type survives regardless of ancestors.
	if movement.Subworks[0].Type != "Movement" {
		t.Fatalf("declared type overridden: got %q", movement.Subworks[0].Type)
	}

	if composer.Works[1].Type != catalog.UnknownType {
		t.Fatalf("untyped root should resolve to %q, got %q", catalog.UnknownType, composer.Works[1].Type)
	}

	rec := movement.Recordings[0]
	if rec.DeezerID != 101 || rec.Label != "Decca" {
		t.Fatalf("unexpected recording: %+v", rec)
	}
}

func TestLoadForestMissingInput(t *testing.T) {
	_, err := catalog.LoadForest(filepath.Join(t.TempDir(), "absent.json"), 32)
	if !errors.Is(err, catalog.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestLoadForestRejectsMalformedJSON(t *testing.T) {
	_, err := catalog.LoadForest(writeForest(t, "{not json"), 32)
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadForestDepthLimit(t *testing.T) {
	deep := `[{"gid":"c1","name":"C","birth_year":null,"death_year":null,"works":[
	  {"gid":"a","name":"A","begin_year":null,"end_year":null,"recordings":[],"subworks":[
	    {"gid":"b","name":"B","begin_year":null,"end_year":null,"recordings":[],"subworks":[
	      {"gid":"c","name":"C","begin_year":null,"end_year":null,"recordings":[],"subworks":[]}
	    ]}
	  ]}
	]}]`
	if _, err := catalog.LoadForest(writeForest(t, deep), 2); !errors.Is(err, catalog.ErrTreeTooDeep) {
		t.Fatalf("expected ErrTreeTooDeep, got %v", err)
	}
	if _, err := catalog.LoadForest(writeForest(t, deep), 8); err != nil {
		t.Fatalf("depth within limit should load: %v", err)
	}
}
