package countydata

import (
	"regexp"
	"sort"
)

// allowedMeasures is the canonical measure vocabulary. Matching is exact
// and case-sensitive: the set doubles as the only gate between client
// input and the measure_name query parameter.
var allowedMeasures = map[string]struct{}{
	"Violent crime rate":              {},
	"Unemployment":                    {},
	"Children in poverty":             {},
	"Diabetic screening":              {},
	"Mammography screening":           {},
	"Preventable hospital stays":      {},
	"Uninsured":                       {},
	"Sexually transmitted infections": {},
	"Physical inactivity":             {},
	"Adult obesity":                   {},
	"Premature Death":                 {},
	"Daily fine particulate matter":   {},
}

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Measures returns the measure vocabulary sorted ascending.
func Measures() []string {
	out := make([]string, 0, len(allowedMeasures))
	for m := range allowedMeasures {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Validate checks a decoded JSON payload and returns the (zip, measure)
// pair unchanged on success. No trimming or case-folding is applied; the
// first failing rule wins. It never touches the store.
func Validate(payload map[string]any) (Query, error) {
	zipVal, zipOK := payload["zip"]
	measureVal, measureOK := payload["measure_name"]
	if !zipOK || zipVal == nil || !measureOK || measureVal == nil {
		return Query{}, ErrMissingField
	}

	zip, ok := zipVal.(string)
	if !ok || !zipPattern.MatchString(zip) {
		return Query{}, ErrInvalidZip
	}

	measure, ok := measureVal.(string)
	if !ok {
		return Query{}, ErrInvalidType
	}
	if _, ok := allowedMeasures[measure]; !ok {
		return Query{}, ErrUnknownMeasure
	}

	return Query{Zip: zip, MeasureName: measure}, nil
}
