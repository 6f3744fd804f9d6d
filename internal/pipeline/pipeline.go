package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"lisztnup/internal/catalog"
	"lisztnup/internal/config"
	"lisztnup/internal/curate"
	"lisztnup/internal/dedup"
	"lisztnup/internal/logging"
	"lisztnup/internal/score"
	"lisztnup/internal/taxonomy"
	"lisztnup/internal/tracks"
)

// Result is everything one curation run produces.
type Result struct {
	// Catalog is the final output: composers sorted by name, works grouped
	// by category and sorted by descending score.
	Catalog *curate.Catalog
	// Categories lists the catalog's category keys in deterministic
	// pipeline order.
	Categories []string
	// Stats holds the drop counts accumulated across all stages.
	Stats curate.Stats
	// Unresolved holds the log lines for final works no classification rule
	// could place beyond the catch-all category.
	Unresolved []string
}

// Pipeline runs the curation stages against a loaded composer forest.
// A Pipeline is single-use: the classifier accumulates unresolved works
// across a run.
type Pipeline struct {
	cfg        *config.Config
	logger     *slog.Logger
	classifier *taxonomy.Classifier
	selector   *tracks.Selector
	threshold  score.Interpolator

	excludedWorks     map[string]struct{}
	excludedComposers map[string]struct{}
}

// New builds a Pipeline from the configuration. The excluded-tracks file is
// read here; a missing file means no exclusions.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	classifier, err := taxonomy.NewClassifier(cfg.Overrides.ComposerTypes)
	if err != nil {
		return nil, fmt.Errorf("building classifier: %w", err)
	}
	threshold, err := score.NewInterpolator(
		cfg.Scoring.WSSLowerBound,
		cfg.Scoring.WSSUpperBound,
		cfg.Scoring.PartScoreAtLowerWSS,
		cfg.Scoring.PartScoreAtUpperWSS,
	)
	if err != nil {
		return nil, fmt.Errorf("building part score threshold: %w", err)
	}
	excludedIDs, err := tracks.LoadExcludedIDs(cfg.Paths.ExcludedTracksFile)
	if err != nil {
		return nil, fmt.Errorf("loading excluded track IDs: %w", err)
	}

	return &Pipeline{
		cfg:               cfg,
		logger:            logging.NewComponentLogger(logger, "pipeline"),
		classifier:        classifier,
		selector:          tracks.NewSelector(cfg.Tracks.LabelPreference, excludedIDs, cfg.Tracks.MaxPerPart),
		threshold:         threshold,
		excludedWorks:     cfg.ExcludedWorkSet(),
		excludedComposers: cfg.ExcludedComposerSet(),
	}, nil
}

// Run loads the input forest and curates it.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	composers, err := catalog.LoadForest(p.cfg.Paths.InputFile, p.cfg.Filters.MaxTreeDepth)
	if err != nil {
		return nil, err
	}
	p.logger.Info("loaded composer forest",
		logging.String("input", p.cfg.Paths.InputFile),
		logging.Int("composers", len(composers)))
	return p.Curate(ctx, composers)
}

// Curate runs every stage over an already loaded forest and returns the
// assembled catalog.
func (p *Pipeline) Curate(ctx context.Context, composers []*catalog.Composer) (*Result, error) {
	var stats curate.Stats
	stats.InitialComposers = len(composers)

	eligible := p.filterByBirthYear(composers, &stats)

	candidates, err := p.generateCandidates(ctx, eligible, &stats)
	if err != nil {
		return nil, err
	}
	p.logger.Info("generated work candidates",
		logging.Int("candidates", len(candidates)),
		logging.Int("root_works", stats.RootWorksConsidered))

	grouped := p.groupAndFilter(candidates, &stats)
	dedup.Apply(grouped, &stats)

	finalComposers := p.gateComposers(eligible, grouped, &stats)
	result := p.assemble(finalComposers, grouped, &stats)

	p.logger.Info("curation complete",
		logging.Int("composers", stats.FinalComposers),
		logging.Int("works", stats.FinalWorks),
		logging.Int("parts", stats.FinalParts),
		logging.Int("unresolved", len(result.Unresolved)))
	result.Stats = stats
	return result, nil
}
