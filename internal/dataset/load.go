package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// RevenueColumn is the one column the loader coerces to numeric.
const RevenueColumn = "revenue"

// Options configures the loaders.
type Options struct {
	Delimiter rune // default ','
}

// Load reads a delimited file (or an XLSX workbook, by extension) into a
// table. All columns and row order are preserved. If a revenue column
// exists its values are coerced to numeric; unparseable or empty cells
// become explicit nulls rather than failing the load. An unreadable path
// or non-tabular content is a fatal error for the caller.
func Load(path string, opts Options) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path, opts)
}

// LoadCSV reads a delimited text file into a table.
func LoadCSV(path string, opts Options) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, eris.Wrap(err, fmt.Sprintf("dataset: open input %s", path))
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1 // allow ragged rows; New pads them

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, eris.Wrap(err, "dataset: read csv")
	}

	return fromRecords(records)
}

// fromRecords builds a table from a header row plus data rows, applying
// the revenue coercion.
func fromRecords(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, eris.New("dataset: input has no header row")
	}

	header := records[0]
	revIdx := -1
	for i, h := range header {
		if h == RevenueColumn {
			revIdx = i
			break
		}
	}

	rows := make([][]Value, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]Value, len(header))
		for i := range header {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			if i == revIdx {
				row[i] = coerceNumeric(cell)
			} else {
				row[i] = String(cell)
			}
		}
		rows = append(rows, row)
	}

	return New(header, rows), nil
}

// coerceNumeric turns a raw cell into a number, or null when it has no
// numeric interpretation. Never an error.
func coerceNumeric(cell string) Value {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return Null()
	}
	if f, ok := String(trimmed).Float(); ok {
		return Number(f)
	}
	return Null()
}
