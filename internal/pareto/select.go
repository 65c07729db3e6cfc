// Package pareto implements the cumulative contribution analysis that
// decides which properties the landlord should focus on.
//
// A ranking metric is rarely spread evenly across a portfolio; a small
// subset of properties usually accounts for most of the achievable
// saving. Select ranks the portfolio by the chosen metric, accumulates
// it in rank order, and cuts the ranking where the running total
// reaches a configurable share of the portfolio total.
package pareto

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"epc-insight/pkg/epc"
)

var (
	// ErrNoRecords is returned when the input portfolio is empty.
	ErrNoRecords = errors.New("pareto: no records to analyse")

	// ErrZeroTotal is returned when the metric sums to zero across the
	// portfolio. The cutoff is degenerate in that case, so the selector
	// fails loudly instead of reporting that 0% of properties explain
	// 0% of the metric.
	ErrZeroTotal = errors.New("pareto: portfolio metric total is zero")
)

// DefaultThresholdFraction is the share of the portfolio total used as
// the cutoff when none is configured.
const DefaultThresholdFraction = 0.5

// Options configures Select. The zero value gets defaults.
type Options struct {
	// ThresholdFraction is the cumulative-share cutoff, in (0, 1].
	ThresholdFraction float64
}

func (o Options) withDefaults() Options {
	if o.ThresholdFraction == 0 {
		o.ThresholdFraction = DefaultThresholdFraction
	}
	return o
}

// Ranked is one property in descending metric order, with the running
// cumulative sum up to and including it.
type Ranked struct {
	Record     epc.Record `json:"record"`
	Value      float64    `json:"value"`
	Cumulative float64    `json:"cumulative"`
}

// Selection is the result of one cumulative contribution analysis.
type Selection struct {
	Metric            epc.Metric `json:"metric"`
	Ranked            []Ranked   `json:"ranked"` // full portfolio, descending by metric
	FocusCount        int        `json:"focus_count"`
	Total             float64    `json:"total"`
	Cutoff            float64    `json:"cutoff"` // Total * ThresholdFraction
	ThresholdFraction float64    `json:"threshold_fraction"`
	SelectedFraction  float64    `json:"selected_fraction"` // FocusCount / len(Ranked)
}

// Focus returns the selected prefix of the ranking.
func (s *Selection) Focus() []Ranked {
	return s.Ranked[:s.FocusCount]
}

// FocusRecords returns just the records of the focus subset, in rank order.
func (s *Selection) FocusRecords() []epc.Record {
	records := make([]epc.Record, s.FocusCount)
	for i, r := range s.Ranked[:s.FocusCount] {
		records[i] = r.Record
	}
	return records
}

// Summary renders the one-line conclusion for the report.
func (s *Selection) Summary() string {
	return fmt.Sprintf(
		"%.0f%% of the total %s across the whole portfolio is explained by only the top %.1f%% of the properties",
		s.ThresholdFraction*100, s.Metric, s.SelectedFraction*100,
	)
}

// Select ranks records descending by the chosen metric and returns the
// maximal prefix whose cumulative sum stays strictly below
// total * threshold. A record whose inclusion would make the cumulative
// sum reach or exceed the cutoff is excluded, even though it is the one
// that crosses the threshold; this matches the reference behavior and
// must not be relaxed to "first record that reaches the cutoff".
//
// The sort is stable: records with equal metric values keep their input
// order, so the selection is deterministic for tied metrics.
//
// Select is pure. It copies the input, never mutates it, and returns
// identical results for identical inputs.
func Select(records []epc.Record, metric epc.Metric, opts Options) (*Selection, error) {
	opts = opts.withDefaults()

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if opts.ThresholdFraction <= 0 || opts.ThresholdFraction > 1 {
		return nil, fmt.Errorf("pareto: threshold fraction %v outside (0, 1]", opts.ThresholdFraction)
	}

	ranked := make([]Ranked, len(records))
	for i, r := range records {
		v := r.MetricValue(metric)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("pareto: non-finite %s for %q", metric, r.FullAddress)
		}
		ranked[i] = Ranked{Record: r, Value: v}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	var total float64
	for _, r := range ranked {
		total += r.Value
	}
	if total == 0 {
		return nil, ErrZeroTotal
	}

	cutoff := total * opts.ThresholdFraction

	cumulative := 0.0
	focusCount := 0
	for i := range ranked {
		cumulative += ranked[i].Value
		ranked[i].Cumulative = cumulative
		if cumulative < cutoff && focusCount == i {
			focusCount = i + 1
		}
	}

	return &Selection{
		Metric:            metric,
		Ranked:            ranked,
		FocusCount:        focusCount,
		Total:             total,
		Cutoff:            cutoff,
		ThresholdFraction: opts.ThresholdFraction,
		SelectedFraction:  float64(focusCount) / float64(len(ranked)),
	}, nil
}
