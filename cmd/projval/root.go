package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var rootFlag string
	var strictFlag bool
	var jsonFlag bool

	ctx := newCommandContext(&configFlag, &rootFlag, &strictFlag)

	rootCmd := &cobra.Command{
		Use:           "projval",
		Short:         "Validate the retention-predictor project scaffolding",
		Long: "projval checks that the e-commerce retention predictor project tree\n" +
			"carries its expected directories, notebooks, documentation placeholders,\n" +
			"dependency manifest entries, and ignore patterns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidation(cmd, ctx, jsonFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Project root to validate (default \".\")")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Fail on pipeline-layout and ignore-pattern misses")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit a machine-readable JSON report")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
