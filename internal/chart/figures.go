package chart

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sells-group/sales-analysis-cli/internal/clean"
	"github.com/sells-group/sales-analysis-cli/internal/report"
)

// CountByMethod renders the customers-per-method bar chart with count
// labels above each bar. Returns the written path.
func CountByMethod(counts []report.MethodCount, outdir string) (string, error) {
	p := newPlot("Number of Customers by Sales Method")
	p.Y.Label.Text = "customers"

	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Method
		labels[i] = strconv.Itoa(c.Count)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", eris.Wrap(err, "chart: count bars")
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(names...)

	if err := addBarLabels(p, values, labels); err != nil {
		return "", err
	}

	path := filepath.Join(outdir, CountFigure)
	return path, save(p, path, 0)
}

// RevenueHistogram renders the overall revenue distribution.
func RevenueHistogram(revenues []float64, outdir string) (string, error) {
	if len(revenues) == 0 {
		return "", eris.New("chart: no revenue values to plot")
	}

	p := newPlot("Distribution of Revenue (Overall)")
	p.X.Label.Text = "revenue"
	p.Y.Label.Text = "customers"

	hist, err := plotter.NewHist(plotter.Values(revenues), 16)
	if err != nil {
		return "", eris.Wrap(err, "chart: revenue histogram")
	}
	hist.FillColor = plotutil.Color(0)
	p.Add(hist)

	path := filepath.Join(outdir, HistFigure)
	return path, save(p, path, 0)
}

// RevenueBoxplot renders one box per sales method.
func RevenueBoxplot(grouped []report.MethodValues, outdir string) (string, error) {
	if len(grouped) == 0 {
		return "", eris.New("chart: no revenue groups to plot")
	}

	p := newPlot("Revenue Distribution by Sales Method")
	p.Y.Label.Text = "revenue"

	names := make([]string, len(grouped))
	for i, g := range grouped {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(g.Values))
		if err != nil {
			return "", eris.Wrap(err, fmt.Sprintf("chart: boxplot for %s", g.Method))
		}
		p.Add(box)
		names[i] = g.Method
	}
	p.NominalX(names...)

	path := filepath.Join(outdir, BoxplotFigure)
	return path, save(p, path, 1)
}

// WeeklyRevenue renders one mean-revenue line per sales method over the
// week axis.
func WeeklyRevenue(weekly report.Weekly, outdir string) (string, error) {
	if len(weekly.Series) == 0 {
		return "", eris.New("chart: no weekly series to plot")
	}

	p := newPlot("Average Weekly Revenue by Sales Method")
	p.X.Label.Text = "week"
	p.Y.Label.Text = "mean revenue"
	p.Legend.Top = true

	ticks := make([]plot.Tick, len(weekly.Ticks))
	for i, tk := range weekly.Ticks {
		ticks[i] = plot.Tick{Value: tk.X, Label: tk.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	for i, s := range weekly.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Mean}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return "", eris.Wrap(err, fmt.Sprintf("chart: weekly line for %s", s.Method))
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Method, line)
	}

	path := filepath.Join(outdir, WeeklyFigure)
	return path, save(p, path, 2)
}

// AvgRevenueBar renders the business-metric bar chart: average revenue
// per customer per method, labelled with the means, bars in canonical
// axis order.
func AvgRevenueBar(metric []report.MethodRevenue, outdir string) (string, error) {
	if len(metric) == 0 {
		return "", eris.New("chart: no metric rows to plot")
	}

	p := newPlot("Average Revenue per Customer per Sales Method")
	p.Y.Label.Text = "mean revenue"

	// metric arrives sorted by mean; the axis keeps canonical order.
	ordered := orderForAxis(metric)
	values := make(plotter.Values, len(ordered))
	names := make([]string, len(ordered))
	labels := make([]string, len(ordered))
	for i, m := range ordered {
		values[i] = m.Mean
		names[i] = m.Method
		labels[i] = strconv.FormatFloat(m.Mean, 'f', 2, 64)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return "", eris.Wrap(err, "chart: metric bars")
	}
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX(names...)

	if err := addBarLabels(p, values, labels); err != nil {
		return "", err
	}

	path := filepath.Join(outdir, MetricFigure)
	return path, save(p, path, 0)
}

// orderForAxis rearranges metric rows into canonical method order for
// the chart without disturbing the caller's sorted table.
func orderForAxis(metric []report.MethodRevenue) []report.MethodRevenue {
	out := make([]report.MethodRevenue, 0, len(metric))
	for _, m := range clean.CanonicalMethods {
		for _, row := range metric {
			if row.Method == m {
				out = append(out, row)
			}
		}
	}
	return out
}

// addBarLabels places a text label just above each bar of a nominal-X
// bar chart. Bars sit at x = 0, 1, 2, ...
func addBarLabels(p *plot.Plot, values plotter.Values, labels []string) error {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return eris.Wrap(err, "chart: bar labels")
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].Font.Size = vg.Points(10)
		lbls.TextStyle[i].XAlign = draw.XCenter
	}
	p.Add(lbls)
	return nil
}
