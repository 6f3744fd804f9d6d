package pipeline

import (
	"context"
	"sort"

	"lisztnup/internal/catalog"
	"lisztnup/internal/curate"
	"lisztnup/internal/logging"
	"lisztnup/internal/score"
	"lisztnup/internal/taxonomy"
)

// filterByBirthYear drops composers born before the configured minimum.
// Composers without a birth year are treated as too old to date and dropped
// as well.
func (p *Pipeline) filterByBirthYear(composers []*catalog.Composer, stats *curate.Stats) []*catalog.Composer {
	minYear := p.cfg.Filters.MinBirthYear
	eligible := make([]*catalog.Composer, 0, len(composers))
	for _, composer := range composers {
		if composer.BirthYear != nil && *composer.BirthYear >= minYear {
			eligible = append(eligible, composer)
		}
	}
	stats.ComposersDroppedBirthYear = len(composers) - len(eligible)
	return eligible
}

// generateCandidates walks every root work of every eligible composer and
// turns the surviving ones into flat scored candidates. For each root work:
// annotate counts, flatten to leaf parts, score, pick representative
// tracks, and apply the dynamic part score threshold derived from the
// work's own significance.
func (p *Pipeline) generateCandidates(ctx context.Context, composers []*catalog.Composer, stats *curate.Stats) ([]*curate.Work, error) {
	var candidates []*curate.Work
	for _, composer := range composers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, root := range composer.Works {
			stats.RootWorksConsidered++
			if work := p.buildCandidate(composer, root, stats); work != nil {
				candidates = append(candidates, work)
			}
		}
	}
	return candidates, nil
}

func (p *Pipeline) buildCandidate(composer *catalog.Composer, root *catalog.Work, stats *curate.Stats) *curate.Work {
	catalog.AnnotateCounts(root)
	leaves, droppedThin := catalog.FlattenParts(root, p.cfg.Filters.MinRecordingsPerPart)
	stats.PartsDroppedMinRecordings += droppedThin
	if len(leaves) == 0 {
		return nil
	}

	popularities := make([]float64, len(leaves))
	for i, leaf := range leaves {
		popularities[i] = score.Popularity(len(leaf.Recordings))
	}
	wss := score.Significance(popularities, p.cfg.Scoring.Alpha)

	// The threshold derives from the computed significance; a curator WSS
	// override changes the published score, not which parts survive.
	minPartScore := p.threshold.Threshold(wss)

	maxPopularity := 0.0
	for _, pop := range popularities {
		if pop > maxPopularity {
			maxPopularity = pop
		}
	}

	potential := make([]curate.Part, 0, len(leaves))
	for i, leaf := range leaves {
		ids := p.selector.Select(leaf.Recordings)
		if len(ids) == 0 {
			stats.PartsDroppedNoTrackID++
			continue
		}
		potential = append(potential, curate.Part{
			Name:   leaf.Name,
			Deezer: ids,
			Score:  score.Relative(popularities[i], maxPopularity),
		})
	}

	parts := make([]curate.Part, 0, len(potential))
	for _, part := range potential {
		if part.Score >= minPartScore {
			parts = append(parts, part)
		}
	}
	stats.PartsDroppedDynamicScore += len(potential) - len(parts)
	if len(parts) == 0 {
		if len(potential) > 0 {
			stats.WorksDroppedBecameEmpty++
		}
		return nil
	}

	if override, ok := p.cfg.Overrides.WSS[root.GID]; ok {
		p.logger.Debug("applying significance override",
			logging.String("work", root.GID),
			logging.Float64("wss", override))
		wss = override
	}

	category := p.classifier.Classify(root.Name, root.Type, composer.GID)
	return &curate.Work{
		GID:       root.GID,
		Composer:  composer.GID,
		Name:      root.Name,
		Type:      string(category),
		BeginYear: root.BeginYear,
		EndYear:   root.EndYear,
		Score:     score.Round2(wss),
		Parts:     parts,
	}
}

// groupAndFilter buckets candidates by category, drops works below the
// minimum significance score or on the exclusion list, and sorts each
// bucket by descending score. Works with equal scores keep candidate order.
func (p *Pipeline) groupAndFilter(candidates []*curate.Work, stats *curate.Stats) *curate.Grouped {
	grouped := curate.NewGrouped()
	for _, work := range candidates {
		grouped.Add(work)
	}

	minWSS := p.cfg.Filters.MinimumWSS
	for _, category := range append([]string(nil), grouped.Order...) {
		works := grouped.ByCategory[category]
		kept := make([]*curate.Work, 0, len(works))
		for _, work := range works {
			if work.Score < minWSS {
				stats.WorksDroppedMinWSS++
				continue
			}
			if _, excluded := p.excludedWorks[work.GID]; excluded {
				stats.WorksDroppedMinWSS++
				continue
			}
			kept = append(kept, work)
		}
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Score > kept[j].Score
		})
		grouped.Replace(category, kept)
	}
	return grouped
}

// gateComposers keeps composers with enough surviving works whose names are
// not on the exclusion list, sorted by name. Composers that lost every work
// to earlier stages drop silently; composers that still had works count as
// gate drops.
func (p *Pipeline) gateComposers(composers []*catalog.Composer, grouped *curate.Grouped, stats *curate.Stats) []curate.Composer {
	workCounts := make(map[string]int)
	grouped.Walk(func(_ string, work *curate.Work) {
		workCounts[work.Composer]++
	})

	minWorks := p.cfg.Filters.MinWorksPerComposer
	final := make([]curate.Composer, 0, len(workCounts))
	for _, composer := range composers {
		_, excluded := p.excludedComposers[composer.Name]
		if workCounts[composer.GID] >= minWorks && !excluded {
			final = append(final, curate.Composer{
				GID:       composer.GID,
				Name:      composer.Name,
				BirthYear: composer.BirthYear,
				DeathYear: composer.DeathYear,
			})
		} else if workCounts[composer.GID] > 0 {
			stats.ComposersDroppedMinWorks++
		}
	}
	sort.Slice(final, func(i, j int) bool {
		return final[i].Name < final[j].Name
	})
	stats.FinalComposers = len(final)
	return final
}

// assemble intersects the surviving works with the final composer set,
// prunes categories that end up empty, and gathers the unresolved-type log
// lines for works that actually shipped.
func (p *Pipeline) assemble(composers []curate.Composer, grouped *curate.Grouped, stats *curate.Stats) *Result {
	finalGIDs := make(map[string]struct{}, len(composers))
	for _, composer := range composers {
		finalGIDs[composer.GID] = struct{}{}
	}

	out := &curate.Catalog{
		Composers: composers,
		Works:     make(map[string][]*curate.Work),
	}
	var categories []string
	for _, category := range grouped.Order {
		var kept []*curate.Work
		for _, work := range grouped.ByCategory[category] {
			if _, ok := finalGIDs[work.Composer]; ok {
				kept = append(kept, work)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out.Works[category] = kept
		categories = append(categories, category)
		stats.FinalWorks += len(kept)
		for _, work := range kept {
			stats.FinalParts += len(work.Parts)
		}
	}

	unresolvedNames := make(map[string]struct{})
	for _, work := range out.Works[string(taxonomy.Other)] {
		unresolvedNames[work.Name] = struct{}{}
	}

	return &Result{
		Catalog:    out,
		Categories: categories,
		Unresolved: p.classifier.UnresolvedMessages(unresolvedNames),
	}
}
