// Package dataset holds the in-memory table model and the file loaders
// that feed the cleaning pipeline.
package dataset

import (
	"strconv"
	"strings"
)

// Kind discriminates the three cell states a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value is a single table cell: a string, a number, or an explicit null.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Null returns the null cell value.
func Null() Value { return Value{kind: KindNull} }

// String returns a string cell value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric cell value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind reports the cell state.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the cell content as a string. Numbers are formatted with
// the shortest exact representation; nulls are empty.
func (v Value) Str() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}

// Float returns the cell as a number. String cells are parsed; the bool
// reports whether a numeric interpretation exists.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer for logs and test failures.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	default:
		return "null"
	}
}

// Table is an ordered sequence of uniformly-shaped rows with named
// columns. Row identity is positional; there is no primary key.
// Transformations return fresh snapshots and never mutate the receiver.
type Table struct {
	cols []string
	rows [][]Value
}

// New builds a table from a header and rows. Short rows are padded with
// nulls and long rows truncated so every row matches the header width.
func New(cols []string, rows [][]Value) Table {
	shaped := make([][]Value, len(rows))
	for i, row := range rows {
		r := make([]Value, len(cols))
		for j := range cols {
			if j < len(row) {
				r[j] = row[j]
			} else {
				r[j] = Null()
			}
		}
		shaped[i] = r
	}
	return Table{cols: append([]string(nil), cols...), rows: shaped}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Columns returns the column names in order.
func (t Table) Columns() []string { return append([]string(nil), t.cols...) }

// ColumnIndex returns the position of a named column.
func (t Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.cols {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// HasColumn reports whether the named column exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// At returns the cell at a row position and column name. Out-of-range
// positions and unknown columns yield null.
func (t Table) At(row int, col string) Value {
	idx, ok := t.ColumnIndex(col)
	if !ok || row < 0 || row >= len(t.rows) {
		return Null()
	}
	return t.rows[row][idx]
}

// Row returns a copy of the row at the given position.
func (t Table) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

// Column returns a copy of the named column, or nil if absent.
func (t Table) Column(name string) []Value {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out
}

// NullCount returns the number of null cells in the named column.
func (t Table) NullCount(name string) int {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return 0
	}
	n := 0
	for _, row := range t.rows {
		if row[idx].IsNull() {
			n++
		}
	}
	return n
}

// Filter returns a new table holding the rows for which keep is true,
// preserving order. The receiver is unchanged.
func (t Table) Filter(keep func(row []Value) bool) Table {
	rows := make([][]Value, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return Table{cols: t.cols, rows: rows}
}

// Map returns a new table with each row replaced by transform(row).
// Returning nil from transform drops the row. Rows passed to transform
// are copies, safe to modify.
func (t Table) Map(transform func(row []Value) []Value) Table {
	rows := make([][]Value, 0, len(t.rows))
	for _, row := range t.rows {
		out := transform(append([]Value(nil), row...))
		if out != nil {
			rows = append(rows, out)
		}
	}
	return Table{cols: t.cols, rows: rows}
}

// WithColumn returns a new table with the named column replaced by vals.
// vals must match the row count; unknown columns return the table as is.
func (t Table) WithColumn(name string, vals []Value) Table {
	idx, ok := t.ColumnIndex(name)
	if !ok || len(vals) != len(t.rows) {
		return t
	}
	rows := make([][]Value, len(t.rows))
	for i, row := range t.rows {
		r := append([]Value(nil), row...)
		r[idx] = vals[i]
		rows[i] = r
	}
	return Table{cols: t.cols, rows: rows}
}

// Equal reports whether two tables have identical columns and cells.
func (t Table) Equal(o Table) bool {
	if len(t.cols) != len(o.cols) || len(t.rows) != len(o.rows) {
		return false
	}
	for i := range t.cols {
		if t.cols[i] != o.cols[i] {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}
	return true
}
