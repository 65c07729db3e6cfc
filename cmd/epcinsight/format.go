package main

import (
	"encoding/json"
	"fmt"
	"os"

	"epc-insight/internal/pareto"
	"epc-insight/internal/report"
)

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSelection(sel *pareto.Selection) {
	fmt.Printf("\nFocus analysis: %s\n", sel.Metric)
	fmt.Printf("  Portfolio total:    %.2f\n", sel.Total)
	fmt.Printf("  Threshold cutoff:   %.2f (%.0f%%)\n", sel.Cutoff, sel.ThresholdFraction*100)
	fmt.Printf("  Focus subset:       %d of %d properties (%.1f%%)\n\n",
		sel.FocusCount, len(sel.Ranked), sel.SelectedFraction*100)

	for i, r := range sel.Focus() {
		fmt.Printf("  %2d. %-40s %10.2f  (cumulative %.2f)\n",
			i+1, r.Record.FullAddress, r.Value, r.Cumulative)
	}
	if sel.FocusCount == 0 {
		fmt.Println("  (no property's cumulative share stays below the cutoff)")
	}

	fmt.Printf("\n%s\n", sel.Summary())
}

func printArtifacts(a *report.Artifacts) {
	fmt.Printf("\nReport run %s\n\n", a.RunID)
	fmt.Printf("  %s\n\n", a.Summary)
	fmt.Println("  Generated artifacts:")
	for _, path := range []string{
		a.CurrentMapPath,
		a.PotentialMapPath,
		a.ScatterPath,
		a.CumulativePath,
		a.SuggestionPath,
		a.RecommendationsPath,
		a.PDFPath,
	} {
		fmt.Printf("    %s\n", path)
	}
	fmt.Println()
}
