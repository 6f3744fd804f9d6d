package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lisztnup/internal/config"
	"lisztnup/internal/logging"
	"lisztnup/internal/output"
	"lisztnup/internal/pipeline"
	"lisztnup/internal/runlog"
)

func newCurateCommand(ctx *commandContext) *cobra.Command {
	var inputFlag string
	var outputFlag string
	var noSummary bool

	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Curate the raw catalog into the flat output catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if path := strings.TrimSpace(inputFlag); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve input path: %w", err)
				}
				cfg.Paths.InputFile = expanded
			}
			if path := strings.TrimSpace(outputFlag); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				cfg.Paths.OutputFile = expanded
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}

			run := runlog.NewRun(cfg.Paths.InputFile, cfg.Paths.OutputFile)
			result, err := p.Run(cmd.Context())
			if err != nil {
				return err
			}

			writer := output.NewWriter(cfg, logger)
			if err := writer.WriteCatalog(result.Catalog); err != nil {
				return err
			}
			if err := writer.WriteUnresolved(result.Unresolved); err != nil {
				return err
			}

			run.FinishedAt = time.Now().UTC()
			run.Composers = result.Stats.FinalComposers
			run.Works = result.Stats.FinalWorks
			run.Parts = result.Stats.FinalParts
			run.Stats = result.Stats
			if err := recordRun(cmd.Context(), cfg, run); err != nil {
				logger.Warn("failed to record run history", logging.Error(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote catalog to %s\n", cfg.Paths.OutputFile)
			if len(result.Unresolved) > 0 {
				fmt.Fprintf(out, "Wrote %d unresolved work types to %s\n",
					len(result.Unresolved), cfg.Paths.UnresolvedLog)
			}
			if !noSummary {
				printSummary(out, result, cfg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Raw catalog input file (overrides config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Catalog output file (overrides config)")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Skip the curation summary")
	return cmd
}

func recordRun(ctx context.Context, cfg *config.Config, run runlog.Run) error {
	store, err := runlog.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(ctx, run)
}
