package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Completed, or the user cancelled on purpose
	ExitRiskExceeded = 1 // Scoring completed but the --fail-at threshold was met
	ExitError        = 2 // Configuration or runtime error
)

// RiskThresholdError indicates that scoring ran successfully, but at least
// one subject reached the risk level given with --fail-at.
type RiskThresholdError struct {
	Message string
}

func (e *RiskThresholdError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		// Ctrl-C mid-prompt is a choice, not a failure.
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\nAborted. Bye.")
			os.Exit(ExitSuccess)
		}

		fmt.Fprintln(os.Stderr, err)

		var thresholdErr *RiskThresholdError
		if errors.As(err, &thresholdErr) {
			os.Exit(ExitRiskExceeded)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
