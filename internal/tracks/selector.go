package tracks

import (
	"sort"
	"strings"

	"lisztnup/internal/catalog"
)

// Selector picks representative track IDs for a part's recordings.
type Selector struct {
	labelPreference []string
	excluded        map[int64]struct{}
	maxPerPart      int
}

// NewSelector builds a Selector. excluded holds track IDs known to be
// unusable; it may be nil.
func NewSelector(labelPreference []string, excluded map[int64]struct{}, maxPerPart int) *Selector {
	if excluded == nil {
		excluded = make(map[int64]struct{})
	}
	return &Selector{
		labelPreference: labelPreference,
		excluded:        excluded,
		maxPerPart:      maxPerPart,
	}
}

// Select returns up to maxPerPart track IDs for the given recordings, but
// never more than half of the usable recordings (rounded up); a part with
// two usable recordings contributes one representative, not both.
//
// Selection order: recordings on preferred labels first (in preference
// order), then any labeled recording, then the rest. Within each tier,
// longer recording names are tried first; they tend to be the better match
// for the part.
func (s *Selector) Select(recordings []catalog.Recording) []int64 {
	usable := make([]catalog.Recording, 0, len(recordings))
	for _, rec := range recordings {
		if rec.DeezerID <= 0 {
			continue
		}
		if _, banned := s.excluded[rec.DeezerID]; banned {
			continue
		}
		usable = append(usable, rec)
	}
	if len(usable) == 0 {
		return nil
	}

	maxToSelect := (len(usable) + 1) / 2
	if maxToSelect > s.maxPerPart {
		maxToSelect = s.maxPerPart
	}

	sort.SliceStable(usable, func(i, j int) bool {
		return len(usable[i].Name) > len(usable[j].Name)
	})

	selected := make([]int64, 0, maxToSelect)
	seen := make(map[int64]struct{}, maxToSelect)
	take := func(rec catalog.Recording) bool {
		if _, dup := seen[rec.DeezerID]; dup {
			return false
		}
		seen[rec.DeezerID] = struct{}{}
		selected = append(selected, rec.DeezerID)
		return len(selected) >= maxToSelect
	}

	labeled := make([]catalog.Recording, 0, len(usable))
	for _, rec := range usable {
		if rec.Label != "" {
			labeled = append(labeled, rec)
		}
	}

	for _, pref := range s.labelPreference {
		prefLower := strings.ToLower(pref)
		for _, rec := range labeled {
			if strings.Contains(strings.ToLower(rec.Label), prefLower) && take(rec) {
				return selected
			}
		}
	}
	for _, rec := range labeled {
		if take(rec) {
			return selected
		}
	}
	for _, rec := range usable {
		if take(rec) {
			return selected
		}
	}
	return selected
}
