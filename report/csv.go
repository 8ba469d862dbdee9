package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudtally/cloudtally/inventory"
)

// Filename builds the deterministic output name for one report file:
// inventory_<mode>_<account>_<YYYYMMDD>.<ext>.
func Filename(mode Mode, accountID string, date time.Time, ext string) string {
	return fmt.Sprintf("inventory_%s_%s_%s.%s", mode, accountID, date.Format("20060102"), ext)
}

// WriteCSV renders the header and one row per record. encoding/csv
// applies the escaping contract: cells containing the delimiter or a
// quote are wrapped in quotes with internal quotes doubled.
func WriteCSV(w io.Writer, mode Mode, records []inventory.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(mode)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(Row(rec, mode)); err != nil {
			return fmt.Errorf("writing row for %s: %w", rec.Identifier, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes one report file under dir and returns its path.
func SaveCSV(dir string, mode Mode, accountID string, records []inventory.Record, date time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(mode, accountID, date, "csv"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, mode, records); err != nil {
		return "", err
	}
	return path, nil
}
