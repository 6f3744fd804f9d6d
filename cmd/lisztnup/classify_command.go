package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lisztnup/internal/catalog"
	"lisztnup/internal/taxonomy"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var composerFlag string

	cmd := &cobra.Command{
		Use:   "classify <work name>",
		Short: "Show how a work name would be categorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			classifier, err := taxonomy.NewClassifier(cfg.Overrides.ComposerTypes)
			if err != nil {
				return err
			}

			category, reason := classifier.Explain(args[0], typeFlag, composerFlag)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", category, reason)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", catalog.UnknownType, "Declared work type")
	cmd.Flags().StringVar(&composerFlag, "composer", "", "Composer identifier, for override rules")
	return cmd
}
