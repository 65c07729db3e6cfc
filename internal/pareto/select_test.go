package pareto

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"epc-insight/pkg/epc"
)

// portfolio builds records whose efficiency-difference metric takes the
// given values, with addresses p0, p1, ... in input order.
func portfolio(values ...float64) []epc.Record {
	records := make([]epc.Record, len(values))
	for i, v := range values {
		records[i] = epc.Record{
			Address:              "p" + string(rune('0'+i)),
			FullAddress:          "p" + string(rune('0'+i)),
			EfficiencyDifference: v,
		}
	}
	return records
}

func TestSelectStrictBoundaryExcludesCrossingRecord(t *testing.T) {
	// Cumulative sums are [50, 80, 100]; cutoff is 50. 50 < 50 is
	// false, so nothing qualifies.
	sel, err := Select(portfolio(50, 30, 20), epc.MetricEfficiencyDifference, Options{ThresholdFraction: 0.5})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.FocusCount != 0 {
		t.Errorf("focus count = %d, want 0", sel.FocusCount)
	}
	if sel.Cutoff != 50 {
		t.Errorf("cutoff = %v, want 50", sel.Cutoff)
	}
	if len(sel.Focus()) != 0 {
		t.Errorf("Focus() returned %d records, want 0", len(sel.Focus()))
	}
}

func TestSelectOffBoundaryIncludesTopRecord(t *testing.T) {
	// Cumulative sums are [40, 70, 90]; cutoff is 45. Only the top
	// record stays below it.
	sel, err := Select(portfolio(40, 30, 20), epc.MetricEfficiencyDifference, Options{ThresholdFraction: 0.5})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.FocusCount != 1 {
		t.Fatalf("focus count = %d, want 1", sel.FocusCount)
	}
	if got := sel.Focus()[0].Value; got != 40 {
		t.Errorf("focus record metric = %v, want 40", got)
	}
	if want := 1.0 / 3.0; math.Abs(sel.SelectedFraction-want) > 1e-12 {
		t.Errorf("selected fraction = %v, want %v", sel.SelectedFraction, want)
	}
}

func TestSelectRankingIsDescendingAndComplete(t *testing.T) {
	records := portfolio(10, 90, 40, 70, 20)
	sel, err := Select(records, epc.MetricEfficiencyDifference, Options{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(sel.Ranked) != len(records) {
		t.Fatalf("ranked %d records, want %d", len(sel.Ranked), len(records))
	}
	for i := 1; i < len(sel.Ranked); i++ {
		if sel.Ranked[i].Value > sel.Ranked[i-1].Value {
			t.Errorf("ranking not descending at %d: %v after %v", i, sel.Ranked[i].Value, sel.Ranked[i-1].Value)
		}
	}
	cumulative := 0.0
	for i, r := range sel.Ranked {
		cumulative += r.Value
		if r.Cumulative != cumulative {
			t.Errorf("cumulative[%d] = %v, want %v", i, r.Cumulative, cumulative)
		}
	}
}

func TestSelectThresholdMonotonicity(t *testing.T) {
	records := portfolio(35, 25, 15, 12, 8, 5)
	prev := -1
	for _, threshold := range []float64{0.1, 0.25, 0.4, 0.5, 0.75, 0.9, 1.0} {
		sel, err := Select(records, epc.MetricEfficiencyDifference, Options{ThresholdFraction: threshold})
		if err != nil {
			t.Fatalf("Select(threshold=%v): %v", threshold, err)
		}
		if sel.FocusCount < prev {
			t.Errorf("focus count shrank to %d at threshold %v (was %d)", sel.FocusCount, threshold, prev)
		}
		prev = sel.FocusCount
	}
}

func TestSelectFullThresholdExcludesOnlyLastRecord(t *testing.T) {
	// With threshold 1 the cutoff equals the total; every cumulative
	// sum but the final one stays strictly below it.
	sel, err := Select(portfolio(50, 20, 15, 10, 5), epc.MetricEfficiencyDifference, Options{ThresholdFraction: 1})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if sel.FocusCount != 4 {
		t.Errorf("focus count = %d, want 4", sel.FocusCount)
	}
}

func TestSelectStableTieBreakKeepsInputOrder(t *testing.T) {
	records := portfolio(30, 30, 30, 10)
	sel, err := Select(records, epc.MetricEfficiencyDifference, Options{ThresholdFraction: 0.7})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	// cutoff = 70; cumulative sums [30, 60, 90, 100] => top two.
	if sel.FocusCount != 2 {
		t.Fatalf("focus count = %d, want 2", sel.FocusCount)
	}
	if got := sel.Focus()[0].Record.Address; got != "p0" {
		t.Errorf("first focus record = %s, want p0", got)
	}
	if got := sel.Focus()[1].Record.Address; got != "p1" {
		t.Errorf("second focus record = %s, want p1", got)
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	records := portfolio(42, 17, 33, 8)
	first, err := Select(records, epc.MetricEfficiencyDifference, Options{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	second, err := Select(records, epc.MetricEfficiencyDifference, Options{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical calls produced different selections")
	}
	// Input order must be untouched.
	if records[0].Address != "p0" || records[1].Address != "p1" {
		t.Error("Select mutated its input")
	}
}

func TestSelectErrors(t *testing.T) {
	t.Run("empty portfolio", func(t *testing.T) {
		_, err := Select(nil, epc.MetricEfficiencyDifference, Options{})
		if !errors.Is(err, ErrNoRecords) {
			t.Errorf("err = %v, want ErrNoRecords", err)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		_, err := Select(portfolio(0, 0, 0), epc.MetricEfficiencyDifference, Options{})
		if !errors.Is(err, ErrZeroTotal) {
			t.Errorf("err = %v, want ErrZeroTotal", err)
		}
	})

	t.Run("non-finite metric", func(t *testing.T) {
		_, err := Select(portfolio(10, math.NaN(), 5), epc.MetricEfficiencyDifference, Options{})
		if err == nil {
			t.Error("expected error for NaN metric")
		}
	})

	t.Run("threshold out of range", func(t *testing.T) {
		for _, threshold := range []float64{-0.5, 1.5} {
			if _, err := Select(portfolio(10, 5), epc.MetricEfficiencyDifference, Options{ThresholdFraction: threshold}); err == nil {
				t.Errorf("expected error for threshold %v", threshold)
			}
		}
	})
}

func TestSummaryMentionsThresholdAndShare(t *testing.T) {
	sel, err := Select(portfolio(40, 30, 20), epc.MetricEfficiencyDifference, Options{ThresholdFraction: 0.5})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := "50% of the total potential_energy_efficiency_difference across the whole portfolio is explained by only the top 33.3% of the properties"
	if got := sel.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
