package dedup

import (
	"lisztnup/internal/curate"
)

// Apply deduplicates the grouped works in place:
//
//  1. A work identifier attached to more than one composer is dropped
//     entirely (ambiguous ownership).
//  2. Among the rest, only the first occurrence of a work identifier
//     survives.
//  3. Each track identifier belongs to the first surviving work that
//     references it; parts keep only the IDs their work claimed, and parts
//     left without any claimed ID are dropped.
//  4. Within one work, two parts whose claimed IDs overlap collapse to the
//     first part.
//  5. A work left without parts is dropped.
//
// Running Apply on its own output is a no-op: every identifier is already
// uniquely owned, so no further claims can conflict.
func Apply(grouped *curate.Grouped, stats *curate.Stats) {
	multiOwner := findMultiOwnerWorks(grouped)
	trackOwner := claimTracks(grouped, multiOwner)

	seenGIDs := make(map[string]struct{})
	for _, category := range append([]string(nil), grouped.Order...) {
		works := grouped.ByCategory[category]
		kept := make([]*curate.Work, 0, len(works))
		for _, work := range works {
			if _, ambiguous := multiOwner[work.GID]; ambiguous {
				continue
			}
			if _, dup := seenGIDs[work.GID]; dup {
				stats.WorksDroppedDuplicates++
				continue
			}
			seenGIDs[work.GID] = struct{}{}

			work.Parts = filterParts(work, trackOwner, stats)
			if len(work.Parts) == 0 {
				stats.WorksDroppedEmptyAfterDedup++
				continue
			}
			kept = append(kept, work)
		}
		grouped.Replace(category, kept)
	}

	stats.WorksDroppedMultiComposer += len(multiOwner)
}

// findMultiOwnerWorks collects work identifiers rooted under more than one
// composer.
func findMultiOwnerWorks(grouped *curate.Grouped) map[string]struct{} {
	owners := make(map[string]map[string]struct{})
	grouped.Walk(func(_ string, work *curate.Work) {
		set, ok := owners[work.GID]
		if !ok {
			set = make(map[string]struct{}, 1)
			owners[work.GID] = set
		}
		set[work.Composer] = struct{}{}
	})

	ambiguous := make(map[string]struct{})
	for gid, composers := range owners {
		if len(composers) > 1 {
			ambiguous[gid] = struct{}{}
		}
	}
	return ambiguous
}

// claimTracks assigns every track identifier to the first non-ambiguous
// work referencing it, in grouping order.
func claimTracks(grouped *curate.Grouped, multiOwner map[string]struct{}) map[int64]string {
	owner := make(map[int64]string)
	grouped.Walk(func(_ string, work *curate.Work) {
		if _, ambiguous := multiOwner[work.GID]; ambiguous {
			return
		}
		for _, part := range work.Parts {
			for _, id := range part.Deezer {
				if _, claimed := owner[id]; !claimed {
					owner[id] = work.GID
				}
			}
		}
	})
	return owner
}

// filterParts strips track IDs claimed by other works, drops parts left
// with nothing, and collapses parts within the work that share a claimed
// ID.
func filterParts(work *curate.Work, trackOwner map[int64]string, stats *curate.Stats) []curate.Part {
	claimed := make([]curate.Part, 0, len(work.Parts))
	for _, part := range work.Parts {
		ids := make([]int64, 0, len(part.Deezer))
		for _, id := range part.Deezer {
			if trackOwner[id] == work.GID {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			stats.PartsDroppedCrossWork++
			continue
		}
		part.Deezer = ids
		claimed = append(claimed, part)
	}

	seen := make(map[int64]struct{})
	unique := make([]curate.Part, 0, len(claimed))
	for _, part := range claimed {
		overlap := false
		for _, id := range part.Deezer {
			if _, ok := seen[id]; ok {
				overlap = true
				break
			}
		}
		if overlap {
			stats.PartsDroppedDuplicateTrack++
			continue
		}
		for _, id := range part.Deezer {
			seen[id] = struct{}{}
		}
		unique = append(unique, part)
	}
	return unique
}
