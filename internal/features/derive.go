// Package features computes the derived metric columns used to rank
// properties: potential cost saved, CO2 difference, and energy
// efficiency difference.
package features

import (
	"math"

	"github.com/shopspring/decimal"

	"epc-insight/pkg/epc"
)

// PotentialCostSaved is the annual saving if the property reached its
// potential: the sum of the current-minus-potential gap across hot
// water, heating, and lighting costs.
func PotentialCostSaved(r epc.Record) decimal.Decimal {
	hotWater := r.HotWaterCostCurrent.Sub(r.HotWaterCostPotential)
	heating := r.HeatingCostCurrent.Sub(r.HeatingCostPotential)
	lighting := r.LightingCostCurrent.Sub(r.LightingCostPotential)
	return hotWater.Add(heating).Add(lighting)
}

// CO2Difference is current minus potential emissions, tonnes/year.
func CO2Difference(r epc.Record) float64 {
	return r.CO2Current - r.CO2Potential
}

// EfficiencyDifference is the absolute gap between potential and
// current SAP scores.
func EfficiencyDifference(r epc.Record) float64 {
	return math.Abs(r.PotentialEfficiency - r.CurrentEfficiency)
}

// Derive fills all derived columns on a copy of the input records.
func Derive(records []epc.Record) []epc.Record {
	out := make([]epc.Record, len(records))
	for i, r := range records {
		r.PotentialCostSaved = PotentialCostSaved(r)
		r.CO2Difference = CO2Difference(r)
		r.EfficiencyDifference = EfficiencyDifference(r)
		out[i] = r
	}
	return out
}
