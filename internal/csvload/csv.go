package csvload

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// NormalizeIdentifier trims whitespace, drops a leading BOM and lowercases.
func NormalizeIdentifier(value string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "\uFEFF"))
}

// ValidateIdentifier normalizes value and ensures it is safe to splice into
// SQL as a table or column name. kind names the identifier in errors.
func ValidateIdentifier(raw, kind string) (string, error) {
	value := NormalizeIdentifier(raw)
	if value == "" {
		return "", fmt.Errorf("%s %q is empty after stripping whitespace", kind, raw)
	}
	if !identifierRe.MatchString(value) {
		return "", fmt.Errorf("%s %q is not a valid SQL identifier", kind, raw)
	}
	return value, nil
}

// ParseCSV reads the file at path and returns validated column names and
// the data rows. Rows shorter than the header are padded with empty
// strings; longer rows are an error (a silently truncated row would drop
// data without a trace).
func ParseCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("csv file is empty")
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		col, err := ValidateIdentifier(h, "Column name")
		if err != nil {
			return nil, nil, err
		}
		columns[i] = col
	}

	rows := make([][]string, 0, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		if len(rec) > len(columns) {
			return nil, nil, fmt.Errorf("row %d: has %d fields, header has %d", rowIdx+1, len(rec), len(columns))
		}
		for len(rec) < len(columns) {
			rec = append(rec, "")
		}
		rows = append(rows, rec)
	}

	return columns, rows, nil
}
