package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"epc-insight/internal/recommend"
)

// buildPDF lays the generated figures and text into the two-page
// report: portfolio views and focus analysis first, recommendations
// second.
func buildPDF(a *Artifacts) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d  |  run %s", pdf.PageNo(), a.RunID), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Energy Efficiency & Recommendations Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, "Your Current Portfolio Energy Efficiency")
	pdf.Cell(95, 6, "Your Potential Portfolio Energy Efficiency")
	pdf.Ln(8)
	y := pdf.GetY()
	pdf.ImageOptions(a.CurrentMapPath, 10, y, 90, 0, false, pngOptions(), 0, "")
	pdf.ImageOptions(a.PotentialMapPath, 105, y, 90, 0, false, pngOptions(), 0, "")
	pdf.SetY(y + 62)

	for _, line := range []string{
		"Improving energy efficiency is directly related to cost savings, as shown on the scatter plot.",
		"Potential cost savings are seen to be higher in some properties than others.",
		"To make these changes most efficiently, it is helpful to view a cumulative plot to determine where to start:",
	} {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(3)

	y = pdf.GetY()
	pdf.ImageOptions(a.ScatterPath, 10, y, 60, 0, false, pngOptions(), 0, "")
	pdf.ImageOptions(a.CumulativePath, 72, y, 128, 0, false, pngOptions(), 0, "")
	pdf.SetY(y + 62)

	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 5, a.Summary, "", "L", false)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Recommendations based on selected properties:")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)
	writeRecommendations(pdf, a.Recommendations)

	return pdf.OutputFileAndClose(a.PDFPath)
}

func writeRecommendations(pdf *fpdf.Fpdf, recs []recommend.Recommendation) {
	for _, rec := range recs {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, rec.Finding)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		for _, addr := range rec.Addresses {
			pdf.Cell(10, 5, "")
			pdf.Cell(0, 5, addr)
			pdf.Ln(5)
		}
		pdf.Cell(0, 5, rec.Advice)
		pdf.Ln(9)
	}
}

func pngOptions() fpdf.ImageOptions {
	return fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
}
