package chart

import (
	"os"
	"path/filepath"
	"testing"

	"epc-insight/internal/pareto"
	"epc-insight/pkg/epc"
)

func testRecords() []epc.Record {
	return []epc.Record{
		{Address: "1 Mill Lane", FullAddress: "1 Mill Lane, SN1 1AA", LocalAuthority: "Swindon",
			CurrentBand: "E", CurrentEfficiency: 52, EfficiencyDifference: 29},
		{Address: "2 Mill Lane", FullAddress: "2 Mill Lane, SN1 1AB", LocalAuthority: "Swindon",
			CurrentBand: "D", CurrentEfficiency: 68, EfficiencyDifference: 6},
		{Address: "5 Abbey Rd", FullAddress: "5 Abbey Rd, BA1 2CD", LocalAuthority: "Bath and North East Somerset",
			CurrentBand: "C", CurrentEfficiency: 73, EfficiencyDifference: 12},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestCumulativeBarWritesPNG(t *testing.T) {
	sel, err := pareto.Select(testRecords(), epc.MetricEfficiencyDifference, pareto.Options{})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path, err := CumulativeBar(sel, CumulativeOptions{OutDir: dir})
	if err != nil {
		t.Fatalf("CumulativeBar: %v", err)
	}
	assertPNG(t, path)
}

func TestScatterWritesPNG(t *testing.T) {
	path, err := Scatter(testRecords(), ScatterOptions{OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	assertPNG(t, path)
}

func TestAuthorityMapWritesPNG(t *testing.T) {
	path, err := AuthorityMap(testRecords(), AuthorityOptions{OutDir: t.TempDir()})
	if err != nil {
		t.Fatalf("AuthorityMap: %v", err)
	}
	assertPNG(t, path)
}

func TestAuthorityMapRejectsEmptyPortfolio(t *testing.T) {
	if _, err := AuthorityMap(nil, AuthorityOptions{OutDir: t.TempDir()}); err == nil {
		t.Error("expected error for empty portfolio")
	}
}
