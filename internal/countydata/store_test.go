package countydata_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/civiclab/county-health-api/internal/countydata"
	"github.com/civiclab/county-health-api/internal/csvload"
)

var chrHeader = []string{
	"state", "county", "state_code", "county_code", "year_span",
	"measure_name", "measure_id", "numerator", "denominator", "raw_value",
	"confidence_interval_lower_bound", "confidence_interval_upper_bound",
	"data_release_year", "fipscode",
}

var zipHeader = []string{"zip", "county", "state_abbreviation", "county_code"}

// chrRow builds a county_health_rankings row for Middlesex County, MA with
// the given measure, release year and year span.
func chrRow(measure, releaseYear, yearSpan string) []string {
	return []string{
		"MA", "Middlesex County", "25", "017", yearSpan,
		measure, "11", "60771", "434563", "0.23",
		"0.22", "0.24", releaseYear, "25017",
	}
}

func writeCSV(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush csv: %v", err)
	}
}

// buildStore loads both source tables into a fresh sqlite file through the
// CSV loader and returns the store path.
func buildStore(t *testing.T, chrRows, zipRows [][]string) string {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data.db")

	// CSV stems become table names, so derive them from the models to keep
	// the loader and the lookup query pointing at the same tables.
	chrCSV := filepath.Join(dir, countydata.HealthRecord{}.TableName()+".csv")
	zipCSV := filepath.Join(dir, countydata.ZipCounty{}.TableName()+".csv")
	writeCSV(t, chrCSV, chrHeader, chrRows)
	writeCSV(t, zipCSV, zipHeader, zipRows)

	for _, csvPath := range []string{chrCSV, zipCSV} {
		if err := csvload.Run(csvload.Config{DBPath: dbPath, CSVPath: csvPath}); err != nil {
			t.Fatalf("load %s: %v", csvPath, err)
		}
	}
	return dbPath
}
