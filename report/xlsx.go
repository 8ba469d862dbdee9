package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cloudtally/cloudtally/inventory"
)

const sheetName = "Inventory"

// SaveXLSX writes the same rows as the CSV path into a spreadsheet and
// returns its path. Row and column contract is identical to the CSV
// output for the same mode.
func SaveXLSX(dir string, mode Mode, accountID string, records []inventory.Record, date time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("naming sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, Header(mode)); err != nil {
		return "", err
	}
	for i, rec := range records {
		if err := writeSheetRow(f, i+2, Row(rec, mode)); err != nil {
			return "", err
		}
	}

	path := filepath.Join(dir, Filename(mode, accountID, date, "xlsx"))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving spreadsheet: %w", err)
	}
	return path, nil
}

func writeSheetRow(f *excelize.File, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

// Save writes the report in the requested format(s) and returns every
// path written.
func Save(dir string, mode Mode, format Format, accountID string, records []inventory.Record, date time.Time) ([]string, error) {
	var paths []string

	if format == FormatCSV || format == FormatBoth {
		path, err := SaveCSV(dir, mode, accountID, records, date)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	if format == FormatXLSX || format == FormatBoth {
		path, err := SaveXLSX(dir, mode, accountID, records, date)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
