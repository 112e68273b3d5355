// Package prompt implements the interactive session. It is glue over the
// estimator, dataset and report packages and performs no scoring of its own.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/calmhq/stresscale/internal/dataset"
	"github.com/calmhq/stresscale/internal/estimator"
	"github.com/calmhq/stresscale/internal/report"
)

// Mode is the input source selected at the start of a session.
type Mode string

const (
	ModeSample Mode = "sample"
	ModeCSV    Mode = "csv"
	ModeManual Mode = "manual"
)

// DefaultOutputFile is used when the save prompt is left blank.
const DefaultOutputFile = "results.csv"

// Run drives one interactive session: pick an input source, score it,
// render the table and optionally save the results. A user abort (Ctrl-C)
// surfaces as huh.ErrUserAborted for the caller to treat as a clean exit.
func Run(in io.Reader, out io.Writer, coeffs estimator.Coefficients) error {
	fmt.Fprintln(out, "Tiny stress estimator. Friendly, not clinical.") //nolint:errcheck

	mode, err := selectMode(in, out)
	if err != nil {
		return err
	}

	subjects, err := gatherSubjects(in, out, mode)
	if err != nil {
		return err
	}

	results := estimator.New(coeffs, subjects).Results()
	report.Render(out, results)

	if len(results) == 0 {
		return nil
	}
	return offerSave(in, out, results)
}

func selectMode(in io.Reader, out io.Writer) (Mode, error) {
	mode := ModeSample
	form := newForm(in, out, huh.NewGroup(
		huh.NewSelect[Mode]().
			Title("Where should the subjects come from?").
			Options(
				huh.NewOption("Use sample data", ModeSample),
				huh.NewOption("Load from a CSV file", ModeCSV),
				huh.NewOption("Enter them manually", ModeManual),
			).
			Value(&mode),
	))
	if err := form.Run(); err != nil {
		return mode, err
	}
	return mode, nil
}

func gatherSubjects(in io.Reader, out io.Writer, mode Mode) ([]estimator.Subject, error) {
	switch mode {
	case ModeCSV:
		var path string
		form := newForm(in, out, huh.NewGroup(
			huh.NewInput().
				Title("Path to CSV file").
				Placeholder("subjects.csv").
				Value(&path),
		))
		if err := form.Run(); err != nil {
			return nil, err
		}
		return loadWithFallback(out, strings.TrimSpace(path))
	case ModeManual:
		return collectManual(in, out)
	default:
		return estimator.SampleSubjects(), nil
	}
}

// loadWithFallback loads subjects from a CSV file, falling back to sample
// data when the file is missing or yields no usable rows. Other failures
// (permissions, malformed CSV framing) surface to the caller.
func loadWithFallback(out io.Writer, path string) ([]estimator.Subject, error) {
	subjects, err := dataset.LoadSubjects(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "File not found. Falling back to sample data.") //nolint:errcheck
		return estimator.SampleSubjects(), nil
	}
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		fmt.Fprintln(out, "CSV gave no usable rows. Falling back to sample data.") //nolint:errcheck
		return estimator.SampleSubjects(), nil
	}
	return subjects, nil
}

// collectManual prompts for subjects until a blank name ends entry. Numeric
// fields are validated inline, so a typo re-prompts that field without
// losing the rest of the subject.
func collectManual(in io.Reader, out io.Writer) ([]estimator.Subject, error) {
	fmt.Fprintln(out, "Enter subjects. Leave the name blank to finish.") //nolint:errcheck

	var subjects []estimator.Subject
	for {
		var name string
		form := newForm(in, out, huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Leave blank to finish").
				Value(&name),
		))
		if err := form.Run(); err != nil {
			return nil, err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return subjects, nil
		}

		var hrRaw, sleepRaw, workRaw string
		form = newForm(in, out, huh.NewGroup(
			numberInput("Avg heart rate (BPM)", &hrRaw),
			numberInput("Sleep hours/day", &sleepRaw),
			numberInput("Work hours/week", &workRaw),
		))
		if err := form.Run(); err != nil {
			return nil, err
		}

		subjects = append(subjects, estimator.Subject{
			Name:             name,
			HeartRateBPM:     parseNumber(hrRaw),
			SleepHoursPerDay: parseNumber(sleepRaw),
			WorkHoursPerWeek: parseNumber(workRaw),
		})
	}
}

func offerSave(in io.Reader, out io.Writer, results []estimator.Result) error {
	var save bool
	form := newForm(in, out, huh.NewGroup(
		huh.NewConfirm().
			Title("Save results to a file?").
			Value(&save),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !save {
		return nil
	}

	path := DefaultOutputFile
	form = newForm(in, out, huh.NewGroup(
		huh.NewInput().
			Title("Output filename").
			Description("Use a .xlsx extension for a spreadsheet").
			Value(&path),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if path = strings.TrimSpace(path); path == "" {
		path = DefaultOutputFile
	}

	if err := dataset.WriteResults(path, results); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d result(s) to %s.\n", len(results), path) //nolint:errcheck
	return nil
}

func numberInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateNumber)
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number, e.g. 72.5")
	}
	return nil
}

// parseNumber converts an already-validated field; a blank slips through
// validation only in tests, so it maps to zero rather than panicking.
func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// newForm builds a form bound to the given streams. Accessible mode is used
// for non-TTY input (e.g., tests, piped input).
func newForm(in io.Reader, out io.Writer, groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}
