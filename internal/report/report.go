package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/calmhq/stresscale/internal/estimator"
)

// EmptyNotice is printed when there is nothing to score.
const EmptyNotice = "No subjects supplied. Nothing to score."

// Render writes a fixed-width table of results to w: one row per result in
// order, a footer with the record count and a non-clinical disclaimer. An
// empty result set produces only the notice. Pure formatting over the
// results; nothing is mutated.
func Render(w io.Writer, results []estimator.Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, EmptyNotice) //nolint:errcheck
		return
	}

	const maxNameWidth = 25
	const minNameWidth = 10

	// Compute dynamic name column width from the longest name.
	nameWidth := len("Name")
	for _, r := range results {
		if runeLen := utf8.RuneCountInString(r.Subject.Name); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	header := fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		padRight("Name", nameWidth), "  HR", "Sleep", "Work", "Score", "Risk")
	rule := strings.Repeat("─", runewidth.StringWidth(header))

	fmt.Fprintf(w, "\n%s\n%s\n", header, rule) //nolint:errcheck
	for _, r := range results {
		fmt.Fprintf(w, "%s | %4.0f | %5.1f | %4.0f | %5.1f | %s\n", //nolint:errcheck
			padRight(truncateName(r.Subject.Name, nameWidth), nameWidth),
			r.Subject.HeartRateBPM,
			r.Subject.SleepHoursPerDay,
			r.Subject.WorkHoursPerWeek,
			r.Score,
			r.Risk)
	}
	fmt.Fprintf(w, "%s\n", rule) //nolint:errcheck
	fmt.Fprintf(w, "Processed %d record(s). Note: this is a simple estimator, not medical advice.\n\n", //nolint:errcheck
		len(results))
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
