package countydata

import (
	"os"

	"github.com/civiclab/county-health-api/internal/db"
)

// Store locates the sqlite file backing lookups. The path is resolved once
// at startup; the file itself is opened per lookup and released before the
// lookup returns.
type Store struct {
	Path string
}

// Records join to zip_county by county code when the record carries one,
// falling back to the (county, state) pair: coverage of the numeric code
// column is inconsistent in the source data. DISTINCT collapses border-ZIP
// rows that match by both keys, and the ordering lets clients plot the
// response as a time series directly.
const lookupQuery = `
	SELECT DISTINCT
		chr.state,
		chr.county,
		chr.state_code,
		chr.county_code,
		chr.year_span,
		chr.measure_name,
		chr.measure_id,
		chr.numerator,
		chr.denominator,
		chr.raw_value,
		chr.confidence_interval_lower_bound,
		chr.confidence_interval_upper_bound,
		chr.data_release_year,
		chr.fipscode
	FROM county_health_rankings AS chr
	INNER JOIN zip_county AS zc
		ON zc.zip = ?
	   AND (
	       (chr.fipscode IS NOT NULL AND chr.fipscode = zc.county_code)
	       OR (chr.county = zc.county AND chr.state = zc.state_abbreviation)
	   )
	WHERE chr.measure_name = ?
	ORDER BY chr.data_release_year ASC, chr.year_span ASC
`

// Lookup returns every record for the ZIP's county (or counties) and the
// given measure. An empty slice with a nil error means the query ran and
// matched nothing; deciding whether that is "not found" is the caller's
// job. Store problems surface as *StoreError, never as an empty result.
func (s *Store) Lookup(zip, measure string) ([]HealthRecord, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, &StoreError{Missing: os.IsNotExist(err), Err: err}
	}

	conn, err := db.Open(s.Path)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	defer db.Close(conn)

	var records []HealthRecord
	if err := conn.Raw(lookupQuery, zip, measure).Scan(&records).Error; err != nil {
		return nil, &StoreError{Err: err}
	}
	return records, nil
}
