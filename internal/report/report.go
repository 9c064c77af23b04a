package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ikh/dicom-master/internal/models"
)

// WriteWorkbook writes rows under the fixed header to a new workbook at
// path, creating the parent directory first. An existing file is replaced.
func WriteWorkbook(path, sheet, runID string, rows []models.OutputRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if current := f.GetSheetName(0); current != sheet {
		if err := f.SetSheetName(current, sheet); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "Master study list",
		Creator:    "dicom-master",
		Identifier: runID,
	}); err != nil {
		return fmt.Errorf("setting document properties: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("opening stream writer: %w", err)
	}

	header := make([]interface{}, len(models.Columns))
	for i, name := range models.Columns {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row.Values()); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
