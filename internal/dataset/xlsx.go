package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/calmhq/stresscale/internal/estimator"
)

const xlsxSheet = "Sheet1"

// WriteResults writes results to path, choosing the format from the file
// extension: .xlsx produces a spreadsheet, anything else CSV.
func WriteResults(path string, results []estimator.Result) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteResultsXLSX(path, results)
	}
	return WriteResultsCSV(path, results)
}

// WriteResultsXLSX writes results to an XLSX workbook with the same schema
// as the CSV export, for people who want to open them in a spreadsheet.
func WriteResultsXLSX(path string, results []estimator.Result) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := setRow(f, 1, exportHeader); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	for i, r := range results {
		cells := []string{
			r.Subject.Name,
			formatMeasure(r.Subject.HeartRateBPM),
			formatMeasure(r.Subject.SleepHoursPerDay),
			formatMeasure(r.Subject.WorkHoursPerWeek),
			fmt.Sprintf("%.1f", r.Score),
			r.Risk.String(),
		}
		if err := setRow(f, i+2, cells); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
