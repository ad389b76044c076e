// Package clean applies the data-quality rules that turn a raw sales
// export into a validated table. Four ordered stages, each a pure
// function producing a fresh snapshot; missing columns skip a stage,
// they never raise.
package clean

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/sells-group/sales-analysis-cli/internal/dataset"
)

// Columns the stages operate on.
const (
	MethodColumn = "sales_method"
	YearsColumn  = "years_as_customer"
	WeekColumn   = "week"
)

// Business bound on customer tenure, inclusive.
const (
	MinYearsAsCustomer = 0
	MaxYearsAsCustomer = 41
)

// CanonicalMethods is the fixed set of valid sales_method values after
// normalization, in presentation order.
var CanonicalMethods = []string{"Email", "Call", "Email + Call"}

// methodLookup maps trimmed, case-folded spellings to canonical labels.
// Anything outside this map is invalid and its row is dropped.
var methodLookup = map[string]string{
	"email":        "Email",
	"call":         "Call",
	"email + call": "Email + Call",
	"em + call":    "Email + Call",
}

var fold = cases.Fold()

// Report is the audit trail of one cleaning run: how many rows each
// counting stage removed.
type Report struct {
	NullRevenue      int `json:"null_revenue"`
	InvalidMethod    int `json:"invalid_method"`
	OutOfBoundsYears int `json:"out_of_bounds_years"`
}

// TotalRemoved sums the per-stage removal counts.
func (r Report) TotalRemoved() int {
	return r.NullRevenue + r.InvalidMethod + r.OutOfBoundsYears
}

// Run applies the four stages in order and returns the cleaned table
// plus the removal audit. Each stage's count is also logged, since the
// console trail is the only audit record this tool keeps.
func Run(t dataset.Table) (dataset.Table, Report) {
	var rep Report

	t, rep.NullRevenue = DropNullRevenue(t)
	zap.L().Info("clean: dropped rows with null revenue",
		zap.Int("removed", rep.NullRevenue), zap.Int("remaining", t.Len()))

	t, rep.InvalidMethod = NormalizeMethod(t)
	zap.L().Info("clean: filtered rows with invalid sales_method",
		zap.Int("removed", rep.InvalidMethod), zap.Int("remaining", t.Len()))

	t, rep.OutOfBoundsYears = BoundYears(t)
	zap.L().Info("clean: removed rows outside years_as_customer bounds",
		zap.Int("removed", rep.OutOfBoundsYears), zap.Int("remaining", t.Len()))

	coerced := CoerceWeek(t)
	zap.L().Debug("clean: week coercion",
		zap.Bool("converted", !coerced.Equal(t)))

	return coerced, rep
}

// DropNullRevenue removes every row whose revenue is null. No-op when
// the column is absent.
func DropNullRevenue(t dataset.Table) (dataset.Table, int) {
	idx, ok := t.ColumnIndex(dataset.RevenueColumn)
	if !ok {
		return t, 0
	}
	before := t.Len()
	out := t.Filter(func(row []dataset.Value) bool {
		return !row[idx].IsNull()
	})
	return out, before - out.Len()
}

// NormalizeMethod trims and case-folds each sales_method value, maps
// known spellings to canonical labels, and drops rows whose value has no
// canonical form. No-op when the column is absent.
func NormalizeMethod(t dataset.Table) (dataset.Table, int) {
	idx, ok := t.ColumnIndex(MethodColumn)
	if !ok {
		return t, 0
	}
	before := t.Len()
	out := t.Map(func(row []dataset.Value) []dataset.Value {
		folded := fold.String(strings.TrimSpace(row[idx].Str()))
		canonical, ok := methodLookup[folded]
		if !ok {
			return nil
		}
		row[idx] = dataset.String(canonical)
		return row
	})
	return out, before - out.Len()
}

// BoundYears keeps rows whose years_as_customer lies in
// [MinYearsAsCustomer, MaxYearsAsCustomer] inclusive. Values with no
// numeric interpretation are out of range. No-op when the column is
// absent.
func BoundYears(t dataset.Table) (dataset.Table, int) {
	idx, ok := t.ColumnIndex(YearsColumn)
	if !ok {
		return t, 0
	}
	before := t.Len()
	out := t.Filter(func(row []dataset.Value) bool {
		years, ok := row[idx].Float()
		return ok && years >= MinYearsAsCustomer && years <= MaxYearsAsCustomer
	})
	return out, before - out.Len()
}

// CoerceWeek converts the week column to numeric, all or nothing: if any
// value fails to parse the column is left exactly as loaded. Never
// errors, never drops rows. No-op when the column is absent.
func CoerceWeek(t dataset.Table) dataset.Table {
	if !t.HasColumn(WeekColumn) {
		return t
	}
	col := t.Column(WeekColumn)
	coerced := make([]dataset.Value, len(col))
	for i, v := range col {
		f, ok := v.Float()
		if !ok {
			return t
		}
		coerced[i] = dataset.Number(f)
	}
	return t.WithColumn(WeekColumn, coerced)
}
