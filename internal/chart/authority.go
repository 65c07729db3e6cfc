package chart

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"epc-insight/pkg/epc"
)

// AuthorityOptions configures the portfolio map. Zero values get
// defaults.
type AuthorityOptions struct {
	Metric   epc.Metric // default MetricCurrentEfficiency
	OutDir   string     // default "results"
	FileName string     // default "<metric>_portfolio_map.png"
	Width    vg.Length  // default 8 inches
	Height   vg.Length  // default 5 inches
}

func (o AuthorityOptions) withDefaults() AuthorityOptions {
	if o.Metric == "" {
		o.Metric = epc.MetricCurrentEfficiency
	}
	if o.OutDir == "" {
		o.OutDir = "results"
	}
	if o.FileName == "" {
		o.FileName = fmt.Sprintf("%s_portfolio_map.png", o.Metric)
	}
	if o.Width == 0 {
		o.Width = 8 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 5 * vg.Inch
	}
	return o
}

// AuthorityMap charts the portfolio's mean efficiency per local
// authority, each bar colored on the certificate's red-to-green scale.
// It is the report's geographic rollup of where the portfolio stands.
func AuthorityMap(records []epc.Record, opts AuthorityOptions) (string, error) {
	opts = opts.withDefaults()

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		v := r.MetricValue(opts.Metric)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("non-finite %s for %q", opts.Metric, r.FullAddress)
		}
		sums[r.LocalAuthority] += v
		counts[r.LocalAuthority]++
	}
	if len(sums) == 0 {
		return "", fmt.Errorf("no records to chart")
	}

	authorities := make([]string, 0, len(sums))
	for a := range sums {
		authorities = append(authorities, a)
	}
	sort.Strings(authorities)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Portfolio %s by Local Authority", opts.Metric)
	p.X.Label.Text = "Local authority"
	p.Y.Label.Text = fmt.Sprintf("Mean %s", opts.Metric)
	p.Y.Min = 0
	p.Y.Max = 100

	// One single-bar chart per authority so each bar can carry its own
	// scale color.
	for i, a := range authorities {
		mean := sums[a] / float64(counts[a])
		values := make(plotter.Values, len(authorities))
		values[i] = mean
		bars, err := plotter.NewBarChart(values, vg.Points(24))
		if err != nil {
			return "", fmt.Errorf("bar chart: %w", err)
		}
		bars.Color = efficiencyColor(mean)
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
	}

	p.NominalX(authorities...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return save(p, opts.Width, opts.Height, opts.OutDir, opts.FileName)
}
