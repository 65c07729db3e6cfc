// Package report runs the full analysis pipeline and assembles the
// landlord-facing artifacts: charts, suggestion and recommendation
// text files, the PDF report, and the Excel export.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"epc-insight/internal/chart"
	"epc-insight/internal/features"
	"epc-insight/internal/pareto"
	"epc-insight/internal/recommend"
	"epc-insight/pkg/epc"
)

// Options configures one report run. Zero values get defaults.
type Options struct {
	OutDir            string     // default "results"
	Metric            epc.Metric // ranking metric, default potential cost saved
	ThresholdFraction float64    // default pareto.DefaultThresholdFraction
}

func (o Options) withDefaults() Options {
	if o.OutDir == "" {
		o.OutDir = "results"
	}
	if o.Metric == "" {
		o.Metric = epc.MetricCostSaved
	}
	if o.ThresholdFraction == 0 {
		o.ThresholdFraction = pareto.DefaultThresholdFraction
	}
	return o
}

// Artifacts lists everything one run produced.
type Artifacts struct {
	RunID           uuid.UUID                  `json:"run_id"`
	Summary         string                     `json:"summary"`
	Selection       *pareto.Selection          `json:"selection"`
	Recommendations []recommend.Recommendation `json:"recommendations"`

	CurrentMapPath      string `json:"current_map_path"`
	PotentialMapPath    string `json:"potential_map_path"`
	ScatterPath         string `json:"scatter_path"`
	CumulativePath      string `json:"cumulative_path"`
	SuggestionPath      string `json:"suggestion_path"`
	RecommendationsPath string `json:"recommendations_path"`
	PDFPath             string `json:"pdf_path"`
}

// Generator assembles reports.
type Generator struct {
	opts Options
	log  zerolog.Logger
}

func New(opts Options, log zerolog.Logger) *Generator {
	return &Generator{opts: opts.withDefaults(), log: log}
}

// Run executes the pipeline on raw records: clean, derive metrics,
// render the portfolio views, select the focus subset, evaluate
// recommendations, and assemble the PDF. Any failure aborts the run;
// no partial report is stitched together from missing pieces.
func (g *Generator) Run(raw []epc.Record) (*Artifacts, error) {
	a := &Artifacts{RunID: uuid.New()}
	log := g.log.With().Str("run_id", a.RunID.String()).Logger()

	records := features.Derive(epc.Clean(raw))
	log.Info().Int("records", len(records)).Msg("portfolio cleaned")

	var err error
	a.CurrentMapPath, err = chart.AuthorityMap(records, chart.AuthorityOptions{
		Metric: epc.MetricCurrentEfficiency, OutDir: g.opts.OutDir,
	})
	if err != nil {
		return nil, fmt.Errorf("current portfolio map: %w", err)
	}
	a.PotentialMapPath, err = chart.AuthorityMap(records, chart.AuthorityOptions{
		Metric: epc.MetricPotentialEfficiency, OutDir: g.opts.OutDir,
	})
	if err != nil {
		return nil, fmt.Errorf("potential portfolio map: %w", err)
	}
	a.ScatterPath, err = chart.Scatter(records, chart.ScatterOptions{OutDir: g.opts.OutDir})
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}

	a.Selection, err = pareto.Select(records, g.opts.Metric, pareto.Options{
		ThresholdFraction: g.opts.ThresholdFraction,
	})
	if err != nil {
		return nil, fmt.Errorf("focus analysis: %w", err)
	}
	a.Summary = a.Selection.Summary()
	log.Info().
		Int("focus", a.Selection.FocusCount).
		Float64("selected_fraction", a.Selection.SelectedFraction).
		Msg("focus subset selected")

	a.CumulativePath, err = chart.CumulativeBar(a.Selection, chart.CumulativeOptions{OutDir: g.opts.OutDir})
	if err != nil {
		return nil, fmt.Errorf("cumulative chart: %w", err)
	}

	a.SuggestionPath = filepath.Join(g.opts.OutDir, "Suggestion.txt")
	if err := os.WriteFile(a.SuggestionPath, []byte(a.Summary+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write suggestion: %w", err)
	}

	a.Recommendations = recommend.Evaluate(a.Selection.FocusRecords())
	a.RecommendationsPath = filepath.Join(g.opts.OutDir, "Recommendations.txt")
	if err := os.WriteFile(a.RecommendationsPath, []byte(recommend.Render(a.Recommendations)), 0o644); err != nil {
		return nil, fmt.Errorf("write recommendations: %w", err)
	}

	a.PDFPath = filepath.Join(g.opts.OutDir, "Energy Efficiency and Cost Savings Report.pdf")
	if err := buildPDF(a); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	log.Info().Str("pdf", a.PDFPath).Msg("report assembled")

	return a, nil
}
