package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/logging"
	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/validation"
)

// errValidationFailed maps a failed run to exit status 1 without the
// usual error print; the report itself is the user-facing output.
var errValidationFailed = errors.New("validation failed")

const bannerWidth = 55

func runValidation(cmd *cobra.Command, ctx *commandContext, jsonOut bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if jsonOut {
		report := validation.NewRunner(cfg, logger).Run()
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
		if !report.Passed {
			return errValidationFailed
		}
		return nil
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, "🚀 E-commerce Retention Predictor - Project Validation")
	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))

	sections := 0
	runner := validation.NewRunner(cfg, logger, validation.WithObserver(func(res validation.Result) {
		if sections > 0 {
			fmt.Fprintln(out)
		}
		sections++
		fmt.Fprintln(out, res.Title)
		for _, item := range res.Items {
			fmt.Fprintln(out, renderItemLine(item, colorize))
		}
	}))
	report := runner.Run()

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummaryTable(report))

	fmt.Fprintln(out, strings.Repeat("=", bannerWidth))
	if report.Passed {
		fmt.Fprintln(out, "🎉 All validation checks passed!")
		fmt.Fprintln(out, "✨ Project structure is correctly implemented")
		fmt.Fprintln(out, "📚 Ready for notebook execution with proper dependencies")
		return nil
	}
	fmt.Fprintln(out, "❌ Some validation checks failed")
	fmt.Fprintln(out, "🔧 Please review and fix the issues above")
	return errValidationFailed
}
