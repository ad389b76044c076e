// Package report computes the console summaries and the aggregations
// the charts render. Everything here only reads the cleaned table.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/sales-analysis-cli/internal/clean"
	"github.com/sells-group/sales-analysis-cli/internal/dataset"
)

// Brief is the pre/post-cleaning shape summary printed to the console.
type Brief struct {
	Rows         int
	Cols         int
	Columns      []string
	HasRevenue   bool
	RevenueNulls int
}

// BriefInfo summarizes a table's shape and revenue null count.
func BriefInfo(t dataset.Table) Brief {
	cols := t.Columns()
	return Brief{
		Rows:         t.Len(),
		Cols:         len(cols),
		Columns:      cols,
		HasRevenue:   t.HasColumn(dataset.RevenueColumn),
		RevenueNulls: t.NullCount(dataset.RevenueColumn),
	}
}

// MethodCount is one bar of the customers-per-method chart.
type MethodCount struct {
	Method string
	Count  int
}

// CountByMethod counts rows per canonical sales method, in fixed
// presentation order. Methods absent from the data count zero.
func CountByMethod(t dataset.Table) []MethodCount {
	byMethod := map[string]int{}
	for _, v := range t.Column(clean.MethodColumn) {
		byMethod[v.Str()]++
	}
	out := make([]MethodCount, 0, len(clean.CanonicalMethods))
	for _, m := range clean.CanonicalMethods {
		out = append(out, MethodCount{Method: m, Count: byMethod[m]})
	}
	return out
}

// MethodRevenue is one row of the summary table: a method's mean revenue
// over the customers that used it.
type MethodRevenue struct {
	Method string
	Mean   float64
	N      int
}

// AvgRevenueByMethod computes mean revenue per distinct method present
// in the table, sorted descending by mean. Exactly one row per method.
func AvgRevenueByMethod(t dataset.Table) []MethodRevenue {
	grouped := revenueByMethod(t)
	out := make([]MethodRevenue, 0, len(grouped))
	for _, g := range grouped {
		out = append(out, MethodRevenue{
			Method: g.Method,
			Mean:   stat.Mean(g.Values, nil),
			N:      len(g.Values),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	return out
}

// MethodValues groups revenue observations under one method.
type MethodValues struct {
	Method string
	Values []float64
}

// RevenueByMethod returns revenue values grouped by method, canonical
// order, methods with no rows omitted.
func RevenueByMethod(t dataset.Table) []MethodValues {
	return revenueByMethod(t)
}

func revenueByMethod(t dataset.Table) []MethodValues {
	methodIdx, okM := t.ColumnIndex(clean.MethodColumn)
	revIdx, okR := t.ColumnIndex(dataset.RevenueColumn)
	if !okM || !okR {
		return nil
	}
	byMethod := map[string][]float64{}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		rev, ok := row[revIdx].Float()
		if !ok {
			continue
		}
		byMethod[row[methodIdx].Str()] = append(byMethod[row[methodIdx].Str()], rev)
	}
	var out []MethodValues
	for _, m := range clean.CanonicalMethods {
		if vals, ok := byMethod[m]; ok {
			out = append(out, MethodValues{Method: m, Values: vals})
		}
	}
	return out
}

// RevenueValues returns every non-null revenue observation in row order.
func RevenueValues(t dataset.Table) []float64 {
	var out []float64
	for _, v := range t.Column(dataset.RevenueColumn) {
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}
