package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"epc-insight/internal/pareto"
)

// CumulativeOptions configures the cumulative contribution chart.
// Zero values get defaults.
type CumulativeOptions struct {
	OutDir   string    // default "results"
	FileName string    // default "cumulative_<metric>.png"
	Width    vg.Length // default 12 inches
	Height   vg.Length // default 4 inches
}

func (o CumulativeOptions) withDefaults(sel *pareto.Selection) CumulativeOptions {
	if o.OutDir == "" {
		o.OutDir = "results"
	}
	if o.FileName == "" {
		o.FileName = fmt.Sprintf("cumulative_%s.png", sel.Metric)
	}
	if o.Width == 0 {
		o.Width = 12 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 4 * vg.Inch
	}
	return o
}

// CumulativeBar draws the ranked properties against the running
// cumulative metric, with a dashed line at the threshold cutoff so the
// skew of the distribution is visible at a glance. Returns the path of
// the written PNG.
func CumulativeBar(sel *pareto.Selection, opts CumulativeOptions) (string, error) {
	opts = opts.withDefaults(sel)

	p := plot.New()
	p.Title.Text = "Cumulative Contribution by Property"
	p.X.Label.Text = "Property"
	p.Y.Label.Text = fmt.Sprintf("Cumulative %s", sel.Metric)

	values := make(plotter.Values, len(sel.Ranked))
	labels := make([]string, len(sel.Ranked))
	for i, r := range sel.Ranked {
		values[i] = r.Cumulative
		labels[i] = r.Record.Address
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return "", fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = color.Black
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	cutoff, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: sel.Cutoff},
		{X: float64(len(sel.Ranked)) - 0.5, Y: sel.Cutoff},
	})
	if err != nil {
		return "", fmt.Errorf("cutoff line: %w", err)
	}
	cutoff.LineStyle.Color = color.RGBA{R: 0xD0, A: 0xFF}
	cutoff.LineStyle.Width = vg.Points(1.5)
	cutoff.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(cutoff)
	p.Legend.Add(fmt.Sprintf("%.0f%% of total", sel.ThresholdFraction*100), cutoff)
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, opts.Width, opts.Height, opts.OutDir, opts.FileName)
}
