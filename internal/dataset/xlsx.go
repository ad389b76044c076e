package dataset

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// LoadXLSX reads the first sheet of an XLSX workbook into a table under
// the same contract as LoadCSV: the first row is the header and revenue
// cells are coerced to numeric-or-null.
func LoadXLSX(path string) (Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return Table{}, eris.Wrap(err, fmt.Sprintf("dataset: open xlsx %s", path))
	}
	if len(f.Sheets) == 0 {
		return Table{}, eris.New("dataset: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	records := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		records = append(records, cells)
	}

	return fromRecords(records)
}
