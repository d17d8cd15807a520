package countydata

import (
	"errors"
	"net/http"
)

// Validation and lookup failures form a closed set. Callers branch with
// errors.Is / errors.As; Classify turns any of them into a status code and
// a client-safe message.
var (
	ErrMalformedBody  = errors.New("Request body must be JSON")
	ErrMissingField   = errors.New("zip and measure_name are required")
	ErrInvalidZip     = errors.New("zip must be a 5-digit string")
	ErrInvalidType    = errors.New("measure_name must be one of the documented measures")
	ErrUnknownMeasure = errors.New("measure_name must be one of the documented measures")
	ErrNoMatch        = errors.New("no matching records")
)

// StoreError reports that the backing store could not be opened or read.
// Missing distinguishes "file not there" (404) from every other store
// failure (500). The wrapped error never reaches a response body.
type StoreError struct {
	Missing bool
	Err     error
}

func (e *StoreError) Error() string {
	if e.Missing {
		return "data store not found"
	}
	return "failed to query data store"
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Classify maps an error from validation or lookup to the HTTP status and
// message contract. Unknown errors collapse to a generic 500 so driver
// details and file paths never leak.
func Classify(err error) (int, string) {
	var storeErr *StoreError
	switch {
	case errors.Is(err, ErrMalformedBody),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidZip),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrUnknownMeasure):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrNoMatch):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &storeErr):
		if storeErr.Missing {
			return http.StatusNotFound, storeErr.Error()
		}
		return http.StatusInternalServerError, storeErr.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
