package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/calmhq/stresscale/internal/estimator"
)

// Column names of the persisted format. Import reads the first four;
// export writes all six.
const (
	ColName      = "name"
	ColHeartRate = "heart_rate_bpm"
	ColSleep     = "sleep_hours_per_day"
	ColWork      = "work_hours_per_week"
	ColScore     = "score"
	ColRisk      = "risk"
)

// DefaultName is substituted when a row has a blank or missing name.
const DefaultName = "Unnamed"

var exportHeader = []string{ColName, ColHeartRate, ColSleep, ColWork, ColScore, ColRisk}

// row maps column name to raw value for a single CSV record.
type row map[string]string

// LoadSubjects reads subjects from a CSV file. The first row is treated as
// headers, so column order does not matter. A blank name defaults to
// DefaultName and blank numeric fields default to 0. A row whose numeric
// field fails to parse is skipped with a warning and the load continues;
// one typo never aborts the whole import. A missing file surfaces an error
// satisfying errors.Is(err, fs.ErrNotExist).
func LoadSubjects(path string) ([]estimator.Subject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // short rows mean missing fields, not errors
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	subjects := make([]estimator.Subject, 0, len(records)-1)

	for i, record := range records[1:] {
		r := make(row, len(headers))
		for j, h := range headers {
			if j < len(record) {
				r[strings.TrimSpace(h)] = record[j]
			}
		}

		subject, err := subjectFromRow(r)
		if err != nil {
			slog.Warn("skipping malformed row", "file", path, "row", i+2, "error", err)
			continue
		}
		subjects = append(subjects, subject)
	}

	return subjects, nil
}

func subjectFromRow(r row) (estimator.Subject, error) {
	name := strings.TrimSpace(r[ColName])
	if name == "" {
		name = DefaultName
	}

	hr, err := parseMeasure(r, ColHeartRate)
	if err != nil {
		return estimator.Subject{}, err
	}
	sleep, err := parseMeasure(r, ColSleep)
	if err != nil {
		return estimator.Subject{}, err
	}
	work, err := parseMeasure(r, ColWork)
	if err != nil {
		return estimator.Subject{}, err
	}

	return estimator.Subject{
		Name:             name,
		HeartRateBPM:     hr,
		SleepHoursPerDay: sleep,
		WorkHoursPerWeek: work,
	}, nil
}

// parseMeasure reads a numeric column. Blank or missing values default to 0;
// anything else must parse as a float.
func parseMeasure(r row, col string) (float64, error) {
	raw := strings.TrimSpace(r[col])
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", col, raw)
	}
	return v, nil
}

// WriteResultsCSV writes results to a CSV file with the six-column export
// schema, one row per result in order. An empty result set still produces a
// header-only file. Open and write failures are surfaced, never swallowed.
func WriteResultsCSV(path string, results []estimator.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(exportHeader)
	for _, r := range results {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{
			r.Subject.Name,
			formatMeasure(r.Subject.HeartRateBPM),
			formatMeasure(r.Subject.SleepHoursPerDay),
			formatMeasure(r.Subject.WorkHoursPerWeek),
			strconv.FormatFloat(r.Score, 'f', 1, 64),
			r.Risk.String(),
		})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if err := f.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		return fmt.Errorf("csv: write %s: %w", path, writeErr)
	}
	return nil
}

// formatMeasure renders an input field with the shortest representation that
// round-trips through ParseFloat, so export followed by import is lossless.
func formatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
