package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lisztnup/internal/config"
	"lisztnup/internal/curate"
	"lisztnup/internal/pipeline"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
)

const topWorksLimit = 50

var categoryTitle = cases.Title(language.English)

func printSummary(w io.Writer, result *pipeline.Result, cfg *config.Config) {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	heading := func(text string) {
		if colorize {
			fmt.Fprintf(w, "\n%s%s%s%s\n", ansiBold, ansiCyan, text, ansiReset)
		} else {
			fmt.Fprintf(w, "\n%s\n", text)
		}
	}

	stats := result.Stats

	heading("Composer filtering")
	fmt.Fprintln(w, renderTable(
		[]string{"Stage", "Count"},
		[][]string{
			{"Initial composers loaded", itoa(stats.InitialComposers)},
			{fmt.Sprintf("Dropped (birth year < %d)", cfg.Filters.MinBirthYear), itoa(stats.ComposersDroppedBirthYear)},
			{fmt.Sprintf("Dropped (< %d final works)", cfg.Filters.MinWorksPerComposer), itoa(stats.ComposersDroppedMinWorks)},
			{"Final composers", itoa(stats.FinalComposers)},
		}, 2))

	heading("Work and part filtering")
	fmt.Fprintln(w, renderTable(
		[]string{"Stage", "Count"},
		[][]string{
			{"Root works considered", itoa(stats.RootWorksConsidered)},
			{fmt.Sprintf("Parts dropped (< %d recordings)", cfg.Filters.MinRecordingsPerPart), itoa(stats.PartsDroppedMinRecordings)},
			{"Parts dropped (no track ID)", itoa(stats.PartsDroppedNoTrackID)},
			{fmt.Sprintf("Works dropped (score < %.1f)", cfg.Filters.MinimumWSS), itoa(stats.WorksDroppedMinWSS)},
			{"Parts dropped (dynamic score threshold)", itoa(stats.PartsDroppedDynamicScore)},
			{"Works dropped (all parts filtered out)", itoa(stats.WorksDroppedBecameEmpty)},
			{"Works dropped (multiple composers)", itoa(stats.WorksDroppedMultiComposer)},
			{"Works dropped (duplicates)", itoa(stats.WorksDroppedDuplicates)},
			{"Parts dropped (cross-work duplicate track)", itoa(stats.PartsDroppedCrossWork)},
			{"Parts dropped (duplicate track)", itoa(stats.PartsDroppedDuplicateTrack)},
			{"Works dropped (empty after track dedup)", itoa(stats.WorksDroppedEmptyAfterDedup)},
			{"Final works", itoa(stats.FinalWorks)},
			{"Final parts", itoa(stats.FinalParts)},
		}, 2))

	heading("Composers by final work count")
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Composer", "Works", "Parts", "Avg parts"},
		composerRankingRows(result), 1, 3, 4, 5))

	heading(fmt.Sprintf("Top %d works by score", topWorksLimit))
	fmt.Fprintln(w, renderTable(
		[]string{"#", "Work", "Composer", "Score"},
		topWorkRows(result, topWorksLimit), 1, 4))

	heading("Final distribution by category")
	fmt.Fprintln(w, renderTable(
		[]string{"Category", "Works"},
		distributionRows(result), 2))
}

func composerRankingRows(result *pipeline.Result) [][]string {
	names := make(map[string]string, len(result.Catalog.Composers))
	for _, composer := range result.Catalog.Composers {
		names[composer.GID] = composer.Name
	}

	type entry struct {
		name  string
		works int
		parts int
	}
	totals := make(map[string]*entry)
	walkCatalog(result, func(work *curate.Work) {
		e, ok := totals[work.Composer]
		if !ok {
			e = &entry{name: names[work.Composer]}
			totals[work.Composer] = e
		}
		e.works++
		e.parts += len(work.Parts)
	})

	entries := make([]entry, 0, len(totals))
	for _, e := range totals {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].works != entries[j].works {
			return entries[i].works > entries[j].works
		}
		return entries[i].name < entries[j].name
	})

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		avg := 0.0
		if e.works > 0 {
			avg = float64(e.parts) / float64(e.works)
		}
		rows = append(rows, []string{
			itoa(i + 1), e.name, itoa(e.works), itoa(e.parts), fmt.Sprintf("%.1f", avg),
		})
	}
	return rows
}

func topWorkRows(result *pipeline.Result, limit int) [][]string {
	names := make(map[string]string, len(result.Catalog.Composers))
	for _, composer := range result.Catalog.Composers {
		names[composer.GID] = composer.Name
	}

	var works []*curate.Work
	walkCatalog(result, func(work *curate.Work) {
		works = append(works, work)
	})
	sort.SliceStable(works, func(i, j int) bool {
		return works[i].Score > works[j].Score
	})
	if len(works) > limit {
		works = works[:limit]
	}

	rows := make([][]string, 0, len(works))
	for i, work := range works {
		rows = append(rows, []string{
			itoa(i + 1), work.Name, names[work.Composer], fmt.Sprintf("%.2f", work.Score),
		})
	}
	return rows
}

func distributionRows(result *pipeline.Result) [][]string {
	type entry struct {
		category string
		count    int
	}
	entries := make([]entry, 0, len(result.Categories))
	for _, category := range result.Categories {
		entries = append(entries, entry{category, len(result.Catalog.Works[category])})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{categoryTitle.String(e.category), itoa(e.count)})
	}
	return rows
}

// walkCatalog visits works in the deterministic category order.
func walkCatalog(result *pipeline.Result, visit func(*curate.Work)) {
	for _, category := range result.Categories {
		for _, work := range result.Catalog.Works[category] {
			visit(work)
		}
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
