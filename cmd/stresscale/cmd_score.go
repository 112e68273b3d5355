package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calmhq/stresscale/internal/dataset"
	"github.com/calmhq/stresscale/internal/estimator"
	"github.com/calmhq/stresscale/internal/projectconfig"
	"github.com/calmhq/stresscale/internal/report"
)

var (
	scoreInputPath string
	scoreOutPath   string
	scoreFormat    string
	scoreFailAt    string
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score subjects from a CSV file without prompting",
		Long: `Score subjects non-interactively, for scripts and pipelines.

Reads subjects from the --input CSV (or the built-in sample data), scores
them with the configured coefficients, and prints a table or writes the
results to --out. Unlike the interactive session, a missing input file is
an error here, not a fallback.`,
		Args: cobra.NoArgs,
		RunE: scoreCommandE,
	}

	cmd.Flags().StringVarP(&scoreInputPath, "input", "i", "", "CSV file with subjects (default: built-in sample data)")
	cmd.Flags().StringVarP(&scoreOutPath, "out", "o", "", "Write results to this file instead of printing a table")
	cmd.Flags().StringVarP(&scoreFormat, "format", "f", "", "Output format: table, csv or xlsx (default: table, or inferred from --out)")
	cmd.Flags().StringVar(&scoreFailAt, "fail-at", "", "Exit non-zero if any subject reaches this risk level (low, moderate or high)")

	return cmd
}

func scoreCommandE(cmd *cobra.Command, _ []string) error {
	format, err := resolveScoreFormat(scoreFormat, scoreOutPath)
	if err != nil {
		return err
	}

	var failAt estimator.RiskLevel
	if scoreFailAt != "" {
		if failAt, err = estimator.ParseRiskLevel(scoreFailAt); err != nil {
			return err
		}
	}

	coeffs, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	subjects := estimator.SampleSubjects()
	if scoreInputPath != "" {
		subjects, err = dataset.LoadSubjects(scoreInputPath)
		if err != nil {
			return err
		}
	}

	results := estimator.New(coeffs, subjects).Results()

	switch format {
	case "table":
		report.Render(cmd.OutOrStdout(), results)
	case "csv":
		if err := dataset.WriteResultsCSV(scoreOutPath, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d result(s) to %s.\n", len(results), scoreOutPath) //nolint:errcheck
	case "xlsx":
		if err := dataset.WriteResultsXLSX(scoreOutPath, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d result(s) to %s.\n", len(results), scoreOutPath) //nolint:errcheck
	}

	if scoreFailAt != "" {
		exceeded := 0
		for _, r := range results {
			if r.Risk.AtLeast(failAt) {
				exceeded++
			}
		}
		if exceeded > 0 {
			return &RiskThresholdError{
				Message: fmt.Sprintf("%d subject(s) at %s risk or above", exceeded, failAt),
			}
		}
	}
	return nil
}

// resolveScoreFormat reconciles --format and --out: an explicit format wins,
// otherwise the --out extension decides, otherwise a table goes to stdout.
func resolveScoreFormat(format, outPath string) (string, error) {
	if format == "" {
		if outPath == "" {
			return "table", nil
		}
		if strings.EqualFold(filepath.Ext(outPath), ".xlsx") {
			return "xlsx", nil
		}
		return "csv", nil
	}

	switch format {
	case "table":
		return "table", nil
	case "csv", "xlsx":
		if outPath == "" {
			return "", fmt.Errorf("--format %s requires --out", format)
		}
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q: must be table, csv or xlsx", format)
	}
}
