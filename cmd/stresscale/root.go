package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calmhq/stresscale/internal/projectconfig"
	"github.com/calmhq/stresscale/internal/prompt"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stresscale",
		Short: "Stresscale - a friendly stress score estimator",
		Long: `Stresscale estimates a simple stress score from heart rate, sleep and
work hours, and buckets it into Low, Moderate or High risk.

Run it with no arguments for an interactive session, or use 'score' for
scripted use. This is a simple estimator, not medical advice.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coeffs, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			return prompt.Run(cmd.InOrStdin(), cmd.OutOrStdout(), coeffs)
		},
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newScoreCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
