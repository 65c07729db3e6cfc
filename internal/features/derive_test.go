package features

import (
	"testing"

	"github.com/shopspring/decimal"

	"epc-insight/pkg/epc"
)

func record() epc.Record {
	return epc.Record{
		Address:               "1 Mill Lane",
		CurrentEfficiency:     52,
		PotentialEfficiency:   81,
		HotWaterCostCurrent:   decimal.NewFromInt(120),
		HotWaterCostPotential: decimal.NewFromInt(80),
		HeatingCostCurrent:    decimal.NewFromInt(850),
		HeatingCostPotential:  decimal.NewFromInt(420),
		LightingCostCurrent:   decimal.NewFromInt(95),
		LightingCostPotential: decimal.NewFromInt(60),
		CO2Current:            4.2,
		CO2Potential:          1.9,
	}
}

func TestPotentialCostSaved(t *testing.T) {
	got := PotentialCostSaved(record())
	if want := decimal.NewFromInt(505); !got.Equal(want) {
		t.Errorf("PotentialCostSaved = %s, want %s", got, want)
	}
}

func TestCO2Difference(t *testing.T) {
	got := CO2Difference(record())
	if got < 2.2999 || got > 2.3001 {
		t.Errorf("CO2Difference = %v, want 2.3", got)
	}
}

func TestEfficiencyDifferenceIsAbsolute(t *testing.T) {
	r := record()
	if got := EfficiencyDifference(r); got != 29 {
		t.Errorf("EfficiencyDifference = %v, want 29", got)
	}
	// A certificate already past its potential still yields a positive gap.
	r.CurrentEfficiency, r.PotentialEfficiency = 81, 52
	if got := EfficiencyDifference(r); got != 29 {
		t.Errorf("EfficiencyDifference reversed = %v, want 29", got)
	}
}

func TestDeriveFillsAllColumnsWithoutMutatingInput(t *testing.T) {
	in := []epc.Record{record()}
	out := Derive(in)

	if !in[0].PotentialCostSaved.IsZero() {
		t.Error("Derive mutated its input")
	}
	if !out[0].PotentialCostSaved.Equal(decimal.NewFromInt(505)) {
		t.Errorf("derived cost saved = %s", out[0].PotentialCostSaved)
	}
	if out[0].EfficiencyDifference != 29 {
		t.Errorf("derived efficiency difference = %v", out[0].EfficiencyDifference)
	}
	if out[0].CO2Difference < 2.2999 || out[0].CO2Difference > 2.3001 {
		t.Errorf("derived co2 difference = %v", out[0].CO2Difference)
	}
}
