package countydata

// HealthRecord is one (county, measure, year-span) observation from the
// county_health_rankings table. Every column is TEXT in the store (the
// loader creates all-text tables), so fields pass through as strings.
type HealthRecord struct {
	State                        string `gorm:"column:state" json:"state"`
	County                       string `gorm:"column:county" json:"county"`
	StateCode                    string `gorm:"column:state_code" json:"state_code"`
	CountyCode                   string `gorm:"column:county_code" json:"county_code"`
	YearSpan                     string `gorm:"column:year_span" json:"year_span"`
	MeasureName                  string `gorm:"column:measure_name" json:"measure_name"`
	MeasureID                    string `gorm:"column:measure_id" json:"measure_id"`
	Numerator                    string `gorm:"column:numerator" json:"numerator"`
	Denominator                  string `gorm:"column:denominator" json:"denominator"`
	RawValue                     string `gorm:"column:raw_value" json:"raw_value"`
	ConfidenceIntervalLowerBound string `gorm:"column:confidence_interval_lower_bound" json:"confidence_interval_lower_bound"`
	ConfidenceIntervalUpperBound string `gorm:"column:confidence_interval_upper_bound" json:"confidence_interval_upper_bound"`
	DataReleaseYear              string `gorm:"column:data_release_year" json:"data_release_year"`
	FIPSCode                     string `gorm:"column:fipscode" json:"fipscode"`
}

func (HealthRecord) TableName() string {
	return "county_health_rankings"
}

// ZipCounty maps a ZIP code to a county, keyed either by the FIPS-style
// county code or by the (county, state_abbreviation) pair. A border ZIP
// may map to several counties.
type ZipCounty struct {
	Zip               string `gorm:"column:zip" json:"zip"`
	County            string `gorm:"column:county" json:"county"`
	StateAbbreviation string `gorm:"column:state_abbreviation" json:"state_abbreviation"`
	CountyCode        string `gorm:"column:county_code" json:"county_code"`
}

func (ZipCounty) TableName() string {
	return "zip_county"
}

// Query is a validated (zip, measure) pair. It is only ever produced by
// Validate, so both fields are well-formed wherever a Query exists.
type Query struct {
	Zip         string `json:"zip"`
	MeasureName string `json:"measure_name"`
}
