package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"epc-insight/internal/pareto"
	"epc-insight/internal/recommend"
	"epc-insight/pkg/epc"
)

var portfolioHeaders = []string{
	"address", "postcode", "full_address", "local_authority_label",
	"current_energy_efficiency", "potential_energy_efficiency",
	"current_energy_rating", "potential_energy_rating",
	"potential_cost_saved", "co2_emissions_potential_difference",
	"potential_energy_efficiency_difference",
}

// ExportWorkbook writes the cleaned portfolio, the focus subset with
// cumulative sums, and the recommendations to one Excel workbook and
// returns its path.
func ExportWorkbook(records []epc.Record, sel *pareto.Selection, recs []recommend.Recommendation, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", outDir, err)
	}
	path := filepath.Join(outDir, "portfolio_analysis.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	const portfolioSheet = "Portfolio"
	f.SetSheetName(f.GetSheetName(0), portfolioSheet)
	if err := writePortfolioSheet(f, portfolioSheet, records); err != nil {
		return "", err
	}
	if err := writeFocusSheet(f, sel); err != nil {
		return "", err
	}
	if err := writeRecommendationSheet(f, recs); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writePortfolioSheet(f *excelize.File, sheet string, records []epc.Record) error {
	for i, h := range portfolioHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	for rowIdx, r := range records {
		values := []interface{}{
			r.Address, r.Postcode, r.FullAddress, r.LocalAuthority,
			r.CurrentEfficiency, r.PotentialEfficiency,
			r.CurrentBand, r.PotentialBand,
			r.PotentialCostSaved.InexactFloat64(), r.CO2Difference,
			r.EfficiencyDifference,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}

func writeFocusSheet(f *excelize.File, sel *pareto.Selection) error {
	const sheet = "Focus"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	headers := []string{"rank", "address", string(sel.Metric), "cumulative"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	for i, r := range sel.Focus() {
		values := []interface{}{i + 1, r.Record.Address, r.Value, r.Cumulative}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}

func writeRecommendationSheet(f *excelize.File, recs []recommend.Recommendation) error {
	const sheet = "Recommendations"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	headers := []string{"rule", "finding", "advice", "addresses"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	for i, rec := range recs {
		values := []interface{}{rec.RuleID, rec.Finding, rec.Advice, strings.Join(rec.Addresses, "; ")}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
	}
	return nil
}
