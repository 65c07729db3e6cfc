// Package recommend evaluates retrofit rules against the focus subset
// and produces the recommendation list for the report.
package recommend

import (
	"strings"

	"epc-insight/pkg/epc"
)

// Rule is one retrofit check over a property's fabric and systems.
type Rule struct {
	ID      string
	Finding string // heading for the matched properties
	Advice  string // what the landlord should do about it
	Matches func(epc.Record) bool
}

// Recommendation is the outcome of one rule over the focus subset.
type Recommendation struct {
	RuleID    string   `json:"rule_id"`
	Finding   string   `json:"finding"`
	Advice    string   `json:"advice"`
	Addresses []string `json:"addresses"`
}

// DefaultRules covers glazing, wall insulation, heating system,
// lighting, and floor insulation, matching the EPC description fields.
var DefaultRules = []Rule{
	{
		ID:      "single_glazing",
		Finding: "Only single glazing in:",
		Advice:  "Consider double or triple glazing for greater efficiency",
		Matches: func(r epc.Record) bool {
			return r.WindowsDescription == "Single glazed"
		},
	},
	{
		ID:      "uninsulated_walls",
		Finding: "Walls not insulated in:",
		Advice:  "Consider insulating walls for greater efficiency",
		Matches: func(r epc.Record) bool {
			return strings.Contains(r.WallsDescription, "no insulation")
		},
	},
	{
		ID:      "no_heat_pump",
		Finding: "No heat pumps in:",
		Advice:  "Consider installing heat pumps for greater efficiency",
		Matches: func(r epc.Record) bool {
			return !strings.Contains(r.MainheatDescription, "heat pump")
		},
	},
	{
		ID:      "partial_low_energy_lighting",
		Finding: "Some low energy lighting in:",
		Advice:  "Consider low energy light sources throughout",
		Matches: func(r epc.Record) bool {
			return r.LightingDescription != "Low energy lighting in all fixed outlets"
		},
	},
	{
		ID:      "uninsulated_floor",
		Finding: "No floor insulation in:",
		Advice:  "Consider installing floor insulation for greater efficiency",
		Matches: func(r epc.Record) bool {
			return strings.Contains(r.FloorDescription, "no insulation")
		},
	},
}

// Evaluate runs every rule over the focus subset. Every rule reports,
// even when nothing matched, so the report layout is stable.
func Evaluate(records []epc.Record) []Recommendation {
	return EvaluateRules(DefaultRules, records)
}

// EvaluateRules runs a custom rule set.
func EvaluateRules(rules []Rule, records []epc.Record) []Recommendation {
	recs := make([]Recommendation, 0, len(rules))
	for _, rule := range rules {
		rec := Recommendation{RuleID: rule.ID, Finding: rule.Finding, Advice: rule.Advice}
		for _, r := range records {
			if rule.Matches(r) {
				rec.Addresses = append(rec.Addresses, r.Address)
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

// Render formats the recommendations as the flat text block written to
// Recommendations.txt and laid into the report.
func Render(recs []Recommendation) string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(rec.Finding)
		b.WriteByte('\n')
		b.WriteString(strings.Join(rec.Addresses, "; "))
		b.WriteByte('\n')
		b.WriteString(rec.Advice)
		b.WriteString("\n\n")
	}
	return b.String()
}
