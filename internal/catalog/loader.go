package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrMissingInput reports that the raw forest file does not exist. The run
// fails immediately; no partial output is ever written.
var ErrMissingInput = errors.New("raw catalog input not found")

// ErrTreeTooDeep reports a work tree nested beyond the configured depth
// limit, which is treated as an upstream data defect rather than recursed
// into.
var ErrTreeTooDeep = errors.New("work tree exceeds depth limit")

// Wire shapes of the extraction output. Years and identifiers may be null in
// the JSON; a missing type is inherited during the descent.
type rawRecording struct {
	GID      string `json:"gid"`
	Name     string `json:"name"`
	ISRC     string `json:"isrc"`
	Label    string `json:"label"`
	DeezerID int64  `json:"deezerId"`
}

type rawWork struct {
	GID        string         `json:"gid"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	BeginYear  *int           `json:"begin_year"`
	EndYear    *int           `json:"end_year"`
	Recordings []rawRecording `json:"recordings"`
	Subworks   []rawWork      `json:"subworks"`
}

type rawComposer struct {
	GID       string    `json:"gid"`
	Name      string    `json:"name"`
	BirthYear *int      `json:"birth_year"`
	DeathYear *int      `json:"death_year"`
	Works     []rawWork `json:"works"`
}

// LoadForest reads the extraction output at path and builds typed composer
// trees, resolving every work's effective genre-type on the way down. No
// type resolution happens after this pass.
func LoadForest(path string, maxDepth int) ([]*Composer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("read forest %s: %w", path, err)
	}

	var raw []rawComposer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse forest %s: %w", path, err)
	}

	composers := make([]*Composer, 0, len(raw))
	for _, rc := range raw {
		composer := &Composer{
			GID:       rc.GID,
			Name:      rc.Name,
			BirthYear: rc.BirthYear,
			DeathYear: rc.DeathYear,
			Works:     make([]*Work, 0, len(rc.Works)),
		}
		for i := range rc.Works {
			work, err := buildWorkTree(&rc.Works[i], "", 0, maxDepth)
			if err != nil {
				return nil, fmt.Errorf("composer %s: %w", rc.GID, err)
			}
			composer.Works = append(composer.Works, work)
		}
		composers = append(composers, composer)
	}
	return composers, nil
}

// buildWorkTree builds a work node and its subtree depth-first, passing the
// parent's effective type down so untyped sub-works inherit it. A root with
// no declared type resolves to UnknownType.
func buildWorkTree(raw *rawWork, parentType string, depth, maxDepth int) (*Work, error) {
	if maxDepth > 0 && depth >= maxDepth {
		return nil, fmt.Errorf("%w: work %s at depth %d", ErrTreeTooDeep, raw.GID, depth)
	}

	effectiveType := raw.Type
	if effectiveType == "" {
		effectiveType = parentType
	}
	if effectiveType == "" {
		effectiveType = UnknownType
	}

	work := &Work{
		GID:        raw.GID,
		Name:       raw.Name,
		Type:       effectiveType,
		BeginYear:  raw.BeginYear,
		EndYear:    raw.EndYear,
		Recordings: make([]Recording, 0, len(raw.Recordings)),
		Subworks:   make([]*Work, 0, len(raw.Subworks)),
	}
	for _, rec := range raw.Recordings {
		work.Recordings = append(work.Recordings, Recording{
			GID:      rec.GID,
			Name:     rec.Name,
			ISRC:     rec.ISRC,
			Label:    rec.Label,
			DeezerID: rec.DeezerID,
		})
	}
	for i := range raw.Subworks {
		sub, err := buildWorkTree(&raw.Subworks[i], effectiveType, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		work.Subworks = append(work.Subworks, sub)
	}
	return work, nil
}
