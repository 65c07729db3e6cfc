// Package epc defines the portfolio data model for Energy Performance
// Certificate records and the cleaning step applied before analysis.
package epc

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric names a numeric column used to rank properties.
type Metric string

const (
	MetricCostSaved            Metric = "potential_cost_saved"
	MetricCO2Difference        Metric = "co2_emissions_potential_difference"
	MetricEfficiencyDifference Metric = "potential_energy_efficiency_difference"
	MetricCurrentEfficiency    Metric = "current_energy_efficiency"
	MetricPotentialEfficiency  Metric = "potential_energy_efficiency"
)

// ParseMetric resolves a metric name from the CLI or config.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.TrimSpace(strings.ToLower(s))) {
	case MetricCostSaved:
		return MetricCostSaved, nil
	case MetricCO2Difference:
		return MetricCO2Difference, nil
	case MetricEfficiencyDifference:
		return MetricEfficiencyDifference, nil
	case MetricCurrentEfficiency:
		return MetricCurrentEfficiency, nil
	case MetricPotentialEfficiency:
		return MetricPotentialEfficiency, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Record is one property in the landlord's portfolio.
// Costs are annual GBP figures from the certificate.
type Record struct {
	Address        string `json:"address"`
	Postcode       string `json:"postcode"`
	FullAddress    string `json:"full_address"` // derived: address + ", " + postcode
	LocalAuthority string `json:"local_authority_label"`

	CurrentEfficiency   float64 `json:"current_energy_efficiency"` // SAP score, 0-100
	PotentialEfficiency float64 `json:"potential_energy_efficiency"`
	CurrentBand         string  `json:"current_energy_rating"` // A-G
	PotentialBand       string  `json:"potential_energy_rating"`

	HotWaterCostCurrent   decimal.Decimal `json:"hot_water_cost_current"`
	HotWaterCostPotential decimal.Decimal `json:"hot_water_cost_potential"`
	HeatingCostCurrent    decimal.Decimal `json:"heating_cost_current"`
	HeatingCostPotential  decimal.Decimal `json:"heating_cost_potential"`
	LightingCostCurrent   decimal.Decimal `json:"lighting_cost_current"`
	LightingCostPotential decimal.Decimal `json:"lighting_cost_potential"`

	CO2Current   float64 `json:"co2_emissions_current"` // tonnes/year
	CO2Potential float64 `json:"co2_emissions_potential"`

	WindowsDescription  string `json:"windows_description"`
	WallsDescription    string `json:"walls_description"`
	MainheatDescription string `json:"mainheat_description"`
	LightingDescription string `json:"lighting_description"`
	FloorDescription    string `json:"floor_description"`

	// Derived columns, filled by the features package.
	PotentialCostSaved   decimal.Decimal `json:"potential_cost_saved"`
	CO2Difference        float64         `json:"co2_emissions_potential_difference"`
	EfficiencyDifference float64         `json:"potential_energy_efficiency_difference"`
}

// MetricValue returns the named numeric column for ranking.
func (r Record) MetricValue(m Metric) float64 {
	switch m {
	case MetricCostSaved:
		return r.PotentialCostSaved.InexactFloat64()
	case MetricCO2Difference:
		return r.CO2Difference
	case MetricEfficiencyDifference:
		return r.EfficiencyDifference
	case MetricCurrentEfficiency:
		return r.CurrentEfficiency
	case MetricPotentialEfficiency:
		return r.PotentialEfficiency
	}
	return math.NaN()
}

// Clean normalizes the raw records and derives the full address.
// It returns a new slice; the input is not modified.
func Clean(records []Record) []Record {
	cleaned := make([]Record, len(records))
	for i, r := range records {
		r.Address = strings.TrimSpace(r.Address)
		r.Postcode = strings.TrimSpace(r.Postcode)
		r.LocalAuthority = strings.TrimSpace(r.LocalAuthority)
		r.CurrentBand = strings.ToUpper(strings.TrimSpace(r.CurrentBand))
		r.PotentialBand = strings.ToUpper(strings.TrimSpace(r.PotentialBand))
		r.FullAddress = r.Address + ", " + r.Postcode
		cleaned[i] = r
	}
	return cleaned
}

// Bands is the EPC rating scale, best to worst.
var Bands = []string{"A", "B", "C", "D", "E", "F", "G"}
