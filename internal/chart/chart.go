// Package chart renders the fixed set of analysis figures as PNG files.
// Everything here is a stateless rendering of the cleaned table; Init
// must run once before any renderer.
package chart

import (
	"os"

	"github.com/rotisserie/eris"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fixed figure file names.
const (
	CountFigure   = "count_customers_by_sales_method.png"
	HistFigure    = "distribution_revenue_overall.png"
	BoxplotFigure = "revenue_by_method_boxplot.png"
	WeeklyFigure  = "avg_weekly_revenue_by_method.png"
	MetricFigure  = "avg_revenue_per_customer_by_method.png"
)

// Options is the one-time chart style configuration. It replaces what
// the analysis previously kept as ambient global plotting state.
type Options struct {
	WidthIn  float64 // base figure width in inches
	HeightIn float64 // figure height in inches
	DPI      int     // raster resolution
}

var opts = Options{WidthIn: 7, HeightIn: 5, DPI: 150}

// Init applies the chart style once at process start. Calling a renderer
// without Init uses the defaults above.
func Init(o Options) {
	if o.WidthIn > 0 {
		opts.WidthIn = o.WidthIn
	}
	if o.HeightIn > 0 {
		opts.HeightIn = o.HeightIn
	}
	if o.DPI > 0 {
		opts.DPI = o.DPI
	}
}

// EnsureOutdir creates the figure directory if absent and returns it.
// An empty dir defaults to "figures".
func EnsureOutdir(dir string) (string, error) {
	if dir == "" {
		dir = "figures"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrap(err, "chart: create output directory")
	}
	return dir, nil
}

// newPlot builds a titled plot with the shared style applied.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)
	return p
}

// save rasterizes the plot to path at the configured geometry.
// extraWidthIn widens individual figures past the base width.
func save(p *plot.Plot, path string, extraWidthIn float64) error {
	w := vg.Length(opts.WidthIn+extraWidthIn) * vg.Inch
	h := vg.Length(opts.HeightIn) * vg.Inch

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "chart: create figure file")
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		_ = f.Close()
		return eris.Wrap(err, "chart: write png")
	}
	if err := f.Close(); err != nil {
		return eris.Wrap(err, "chart: close figure file")
	}
	return nil
}
