package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"epc-insight/pkg/epc"
)

// ScatterOptions configures the two-metric scatter. Zero values get
// defaults: the efficiency-difference vs cost-saved view colored by
// current rating band.
type ScatterOptions struct {
	X        epc.Metric            // default MetricEfficiencyDifference
	Y        epc.Metric            // default MetricCostSaved
	HueOrder []string              // legend order, default epc.Bands
	Palette  map[string]color.RGBA // default EPCPalette
	OutDir   string                // default "results"
	FileName string                // default "<x>_vs_<y>_scatter.png"
	Width    vg.Length             // default 5 inches
	Height   vg.Length             // default 5 inches
}

func (o ScatterOptions) withDefaults() ScatterOptions {
	if o.X == "" {
		o.X = epc.MetricEfficiencyDifference
	}
	if o.Y == "" {
		o.Y = epc.MetricCostSaved
	}
	if o.HueOrder == nil {
		o.HueOrder = epc.Bands
	}
	if o.Palette == nil {
		o.Palette = EPCPalette
	}
	if o.OutDir == "" {
		o.OutDir = "results"
	}
	if o.FileName == "" {
		o.FileName = fmt.Sprintf("%s_vs_%s_scatter.png", o.X, o.Y)
	}
	if o.Width == 0 {
		o.Width = 5 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 5 * vg.Inch
	}
	return o
}

// Scatter plots one metric against another, one colored series per
// current rating band, and returns the path of the written PNG.
func Scatter(records []epc.Record, opts ScatterOptions) (string, error) {
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = "Efficiency Improvement vs Saving"
	p.X.Label.Text = string(opts.X)
	p.Y.Label.Text = string(opts.Y)
	p.Add(plotter.NewGrid())

	for _, band := range opts.HueOrder {
		var pts plotter.XYs
		for _, r := range records {
			if r.CurrentBand != band {
				continue
			}
			pts = append(pts, plotter.XY{
				X: r.MetricValue(opts.X),
				Y: r.MetricValue(opts.Y),
			})
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return "", fmt.Errorf("scatter for band %s: %w", band, err)
		}
		s.GlyphStyle.Color = opts.Palette[band]
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(band, s)
	}
	p.Legend.Top = true

	return save(p, opts.Width, opts.Height, opts.OutDir, opts.FileName)
}
