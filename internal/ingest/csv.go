// Package ingest loads EPC records from the supported sources.
//
// The CSV layout follows the Energy Performance of Buildings open data
// download (https://epc.opendatacommunities.org/): hyphenated header
// names, one row per certificate. Headers are normalized to underscore
// form before binding so both raw downloads and re-exported tables load.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"epc-insight/pkg/epc"
)

// Columns required for the analysis, in normalized (underscore) form.
var requiredColumns = []string{
	"address",
	"postcode",
	"local_authority_label",
	"current_energy_efficiency",
	"potential_energy_efficiency",
	"current_energy_rating",
	"potential_energy_rating",
	"hot_water_cost_current",
	"hot_water_cost_potential",
	"heating_cost_current",
	"heating_cost_potential",
	"lighting_cost_current",
	"lighting_cost_potential",
	"co2_emissions_current",
	"co2_emissions_potential",
	"windows_description",
	"walls_description",
	"mainheat_description",
	"lighting_description",
	"floor_description",
}

// ReadCSVFile loads records from a CSV file on disk.
func ReadCSVFile(path string) ([]epc.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses EPC records from r. All required columns must be
// present and numeric columns must parse on every row; a bad cell is an
// error naming the row and column, not a silently skipped record.
func ReadCSV(r io.Reader) ([]epc.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var records []epc.Record
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		p := rowParser{fields: fields, index: index, row: row}
		rec := epc.Record{
			Address:               p.str("address"),
			Postcode:              p.str("postcode"),
			LocalAuthority:        p.str("local_authority_label"),
			CurrentEfficiency:     p.float("current_energy_efficiency"),
			PotentialEfficiency:   p.float("potential_energy_efficiency"),
			CurrentBand:           p.str("current_energy_rating"),
			PotentialBand:         p.str("potential_energy_rating"),
			HotWaterCostCurrent:   p.money("hot_water_cost_current"),
			HotWaterCostPotential: p.money("hot_water_cost_potential"),
			HeatingCostCurrent:    p.money("heating_cost_current"),
			HeatingCostPotential:  p.money("heating_cost_potential"),
			LightingCostCurrent:   p.money("lighting_cost_current"),
			LightingCostPotential: p.money("lighting_cost_potential"),
			CO2Current:            p.float("co2_emissions_current"),
			CO2Potential:          p.float("co2_emissions_potential"),
			WindowsDescription:    p.str("windows_description"),
			WallsDescription:      p.str("walls_description"),
			MainheatDescription:   p.str("mainheat_description"),
			LightingDescription:   p.str("lighting_description"),
			FloorDescription:      p.str("floor_description"),
		}
		if p.err != nil {
			return nil, p.err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return records, nil
}

// normalizeHeader maps an EPC download header onto its underscore form.
func normalizeHeader(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.ReplaceAll(name, "-", "_")
}

// rowParser accumulates the first cell-level error so each field read
// stays a one-liner above.
type rowParser struct {
	fields []string
	index  map[string]int
	row    int
	err    error
}

func (p *rowParser) raw(col string) string {
	i := p.index[col]
	if i >= len(p.fields) {
		if p.err == nil {
			p.err = fmt.Errorf("row %d: missing column %q", p.row, col)
		}
		return ""
	}
	return strings.TrimSpace(p.fields[i])
}

func (p *rowParser) str(col string) string {
	return p.raw(col)
}

func (p *rowParser) float(col string) float64 {
	s := p.raw(col)
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("row %d: column %q: invalid number %q", p.row, col, s)
		return 0
	}
	return v
}

func (p *rowParser) money(col string) decimal.Decimal {
	s := p.raw(col)
	if p.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.err = fmt.Errorf("row %d: column %q: invalid amount %q", p.row, col, s)
		return decimal.Zero
	}
	return d
}
