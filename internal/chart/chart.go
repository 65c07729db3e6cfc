// Package chart renders the report figures as PNG files using
// gonum/plot: the cumulative contribution bar chart, the efficiency
// vs savings scatter, and the per-authority portfolio view.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// EPCPalette maps rating bands onto the standard certificate colors.
var EPCPalette = map[string]color.RGBA{
	"A": {R: 0x0A, G: 0x86, B: 0x47, A: 0xFF},
	"B": {R: 0x2E, G: 0xA9, B: 0x49, A: 0xFF},
	"C": {R: 0x95, G: 0xCA, B: 0x53, A: 0xFF},
	"D": {R: 0xF1, G: 0xEC, B: 0x37, A: 0xFF},
	"E": {R: 0xF6, G: 0xAE, B: 0x35, A: 0xFF},
	"F": {R: 0xEF, G: 0x6F, B: 0x2E, A: 0xFF},
	"G": {R: 0xE9, G: 0x27, B: 0x30, A: 0xFF},
}

// save writes the plot under dir, creating the directory on first use.
// Directory creation is scoped here so importing the package has no
// filesystem side effects.
func save(p *plot.Plot, w, h vg.Length, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// efficiencyColor maps a 0-100 SAP score onto a red-yellow-green ramp,
// matching the certificate's worst-to-best color language.
func efficiencyColor(score float64) color.RGBA {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	red := EPCPalette["G"]
	yellow := EPCPalette["D"]
	green := EPCPalette["A"]
	if score < 50 {
		return lerp(red, yellow, score/50)
	}
	return lerp(yellow, green, (score-50)/50)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	f := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: f(a.R, b.R), G: f(a.G, b.G), B: f(a.B, b.B), A: 0xFF}
}
