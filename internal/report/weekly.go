package report

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/sales-analysis-cli/internal/clean"
	"github.com/sells-group/sales-analysis-cli/internal/dataset"
)

// Tick is one labelled position on the week axis.
type Tick struct {
	X     float64
	Label string
}

// SeriesPoint is one (week, mean revenue) observation for a method.
type SeriesPoint struct {
	X    float64
	Mean float64
}

// MethodSeries is the weekly mean-revenue line for one sales method.
type MethodSeries struct {
	Method string
	Points []SeriesPoint
}

// Weekly is the data behind the average-weekly-revenue chart.
type Weekly struct {
	Series []MethodSeries
	Ticks  []Tick
}

// WeeklySeries builds per-method weekly mean-revenue series. Weeks with
// numeric values are ordered numerically and plotted at their value;
// otherwise weeks keep natural string order and are plotted at ordinal
// positions. Returns false when any of week, revenue, or sales_method is
// missing.
func WeeklySeries(t dataset.Table) (Weekly, bool) {
	weekIdx, okW := t.ColumnIndex(clean.WeekColumn)
	revIdx, okR := t.ColumnIndex(dataset.RevenueColumn)
	methodIdx, okM := t.ColumnIndex(clean.MethodColumn)
	if !okW || !okR || !okM {
		return Weekly{}, false
	}

	numeric := weekIsNumeric(t, weekIdx)
	xs, ticks := weekAxis(t, weekIdx, numeric)

	// method → week label → revenue observations
	obs := map[string]map[string][]float64{}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		rev, ok := row[revIdx].Float()
		if !ok {
			continue
		}
		method := row[methodIdx].Str()
		week := row[weekIdx].Str()
		if obs[method] == nil {
			obs[method] = map[string][]float64{}
		}
		obs[method][week] = append(obs[method][week], rev)
	}

	var series []MethodSeries
	for _, m := range clean.CanonicalMethods {
		weeks, ok := obs[m]
		if !ok {
			continue
		}
		var pts []SeriesPoint
		for i, tick := range ticks {
			vals, ok := weeks[tick.Label]
			if !ok {
				continue
			}
			pts = append(pts, SeriesPoint{X: xs[i], Mean: stat.Mean(vals, nil)})
		}
		series = append(series, MethodSeries{Method: m, Points: pts})
	}

	return Weekly{Series: series, Ticks: ticks}, true
}

// weekIsNumeric reports whether every week cell parses as a number.
func weekIsNumeric(t dataset.Table, weekIdx int) bool {
	for i := 0; i < t.Len(); i++ {
		if _, ok := t.Row(i)[weekIdx].Float(); !ok {
			return false
		}
	}
	return t.Len() > 0
}

// weekAxis returns plot positions and labelled ticks for the distinct
// weeks, in plot order.
func weekAxis(t dataset.Table, weekIdx int, numeric bool) ([]float64, []Tick) {
	seen := map[string]bool{}
	var labels []string
	for i := 0; i < t.Len(); i++ {
		label := t.Row(i)[weekIdx].Str()
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}

	if numeric {
		sort.Slice(labels, func(i, j int) bool {
			a, _ := strconv.ParseFloat(labels[i], 64)
			b, _ := strconv.ParseFloat(labels[j], 64)
			return a < b
		})
	} else {
		sort.Strings(labels)
	}

	xs := make([]float64, len(labels))
	ticks := make([]Tick, len(labels))
	for i, label := range labels {
		x := float64(i)
		if numeric {
			x, _ = strconv.ParseFloat(label, 64)
		}
		xs[i] = x
		ticks[i] = Tick{X: x, Label: label}
	}
	return xs, ticks
}
