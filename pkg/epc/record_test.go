package epc

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCleanDerivesFullAddress(t *testing.T) {
	in := []Record{{Address: " 1 Mill Lane ", Postcode: " SN1 1AA ", CurrentBand: "e", PotentialBand: " b"}}
	out := Clean(in)

	if got := out[0].FullAddress; got != "1 Mill Lane, SN1 1AA" {
		t.Errorf("full address = %q", got)
	}
	if out[0].CurrentBand != "E" || out[0].PotentialBand != "B" {
		t.Errorf("bands = %q/%q, want E/B", out[0].CurrentBand, out[0].PotentialBand)
	}
	if in[0].FullAddress != "" {
		t.Error("Clean mutated its input")
	}
}

func TestMetricValue(t *testing.T) {
	r := Record{
		CurrentEfficiency:    52,
		PotentialEfficiency:  81,
		PotentialCostSaved:   decimal.NewFromInt(505),
		CO2Difference:        2.3,
		EfficiencyDifference: 29,
	}
	cases := []struct {
		metric Metric
		want   float64
	}{
		{MetricCostSaved, 505},
		{MetricCO2Difference, 2.3},
		{MetricEfficiencyDifference, 29},
		{MetricCurrentEfficiency, 52},
		{MetricPotentialEfficiency, 81},
	}
	for _, tc := range cases {
		if got := r.MetricValue(tc.metric); got != tc.want {
			t.Errorf("MetricValue(%s) = %v, want %v", tc.metric, got, tc.want)
		}
	}
	if !math.IsNaN(r.MetricValue(Metric("bogus"))) {
		t.Error("unknown metric should be NaN")
	}
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" Potential_Cost_Saved ")
	if err != nil || m != MetricCostSaved {
		t.Errorf("ParseMetric = %v, %v", m, err)
	}
	if _, err := ParseMetric("floor_area"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
