package countydata_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/civiclab/county-health-api/internal/countydata"
)

// TestLookup_MatchesByCountyCode verifies the preferred join key: the
// record's fipscode against the mapping's county_code.
func TestLookup_MatchesByCountyCode(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{chrRow("Adult obesity", "2012", "2009-2011")},
		[][]string{{"02138", "some other name", "MA", "25017"}},
	)
	store := &countydata.Store{Path: dbPath}

	records, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FIPSCode != "25017" || records[0].MeasureName != "Adult obesity" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

// TestLookup_FallsBackToNameMatch verifies that records without a usable
// county code still join on the (county, state) pair.
func TestLookup_FallsBackToNameMatch(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{chrRow("Adult obesity", "2012", "2009-2011")},
		[][]string{{"02138", "Middlesex County", "MA", "99999"}}, // code doesn't match
	)
	store := &countydata.Store{Path: dbPath}

	records, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record via name fallback, got %d", len(records))
	}
}

// TestLookup_Deduplicates verifies that a ZIP whose mappings match the same
// record both by code and by name yields that record exactly once.
func TestLookup_Deduplicates(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{chrRow("Adult obesity", "2012", "2009-2011")},
		[][]string{
			{"02138", "not the name", "MA", "25017"},     // matches by code
			{"02138", "Middlesex County", "MA", "00000"}, // matches by name
		},
	)
	store := &countydata.Store{Path: dbPath}

	records, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected deduplicated single record, got %d", len(records))
	}
}

// TestLookup_Ordering verifies results come back ascending by release year
// then year span, regardless of storage order.
func TestLookup_Ordering(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{
			chrRow("Adult obesity", "2014", "2011-2013"),
			chrRow("Adult obesity", "2012", "2009-2011"),
			chrRow("Adult obesity", "2012", "2008-2010"),
		},
		[][]string{{"02138", "Middlesex County", "MA", "25017"}},
	)
	store := &countydata.Store{Path: dbPath}

	records, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := []struct{ year, span string }{
		{"2012", "2008-2010"},
		{"2012", "2009-2011"},
		{"2014", "2011-2013"},
	}
	for i, w := range want {
		if records[i].DataReleaseYear != w.year || records[i].YearSpan != w.span {
			t.Errorf("position %d: got (%s, %s), want (%s, %s)",
				i, records[i].DataReleaseYear, records[i].YearSpan, w.year, w.span)
		}
	}
}

// TestLookup_EmptyResult verifies that zero matches is a nil error with an
// empty slice, not a failure.
func TestLookup_EmptyResult(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{chrRow("Adult obesity", "2012", "2009-2011")},
		[][]string{{"02138", "Middlesex County", "MA", "25017"}},
	)
	store := &countydata.Store{Path: dbPath}

	records, err := store.Lookup("00000", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

// TestLookup_MissingStore verifies that a nonexistent store file surfaces
// as a StoreError with Missing set, never as an empty result.
func TestLookup_MissingStore(t *testing.T) {
	store := &countydata.Store{Path: filepath.Join(t.TempDir(), "missing.db")}

	_, err := store.Lookup("02138", "Adult obesity")
	var storeErr *countydata.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if !storeErr.Missing {
		t.Error("expected Missing to be set for a nonexistent store file")
	}
}

// TestLookup_Idempotent verifies repeated identical lookups return
// identically ordered results.
func TestLookup_Idempotent(t *testing.T) {
	dbPath := buildStore(t,
		[][]string{
			chrRow("Adult obesity", "2013", "2010-2012"),
			chrRow("Adult obesity", "2012", "2009-2011"),
		},
		[][]string{{"02138", "Middlesex County", "MA", "25017"}},
	)
	store := &countydata.Store{Path: dbPath}

	first, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Lookup("02138", "Adult obesity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs between lookups", i)
		}
	}
}
