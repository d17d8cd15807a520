package countydata

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// Handler serves the county data endpoints. It holds only the immutable
// store config, so a single Handler is safe for concurrent requests.
type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// CountyData handles POST /county_data: decode the body, short-circuit on
// the teapot sentinel, validate, look up, and shape the result.
func (h *Handler) CountyData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrMalformedBody.Error())
		return
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		writeError(w, http.StatusBadRequest, ErrMalformedBody.Error())
		return
	}

	// Documented easter egg: takes priority over field validation.
	if coffee, ok := payload["coffee"].(string); ok && coffee == "teapot" {
		writeError(w, http.StatusTeapot, "Request rejected: I'm a teapot.")
		return
	}

	q, err := Validate(payload)
	if err != nil {
		status, msg := Classify(err)
		writeError(w, status, msg)
		return
	}

	records, err := h.Store.Lookup(q.Zip, q.MeasureName)
	if err != nil {
		status, msg := Classify(err)
		log.Printf("[countydata] lookup zip=%s measure=%q failed: %v", q.Zip, q.MeasureName, err)
		writeError(w, status, msg)
		return
	}

	if len(records) == 0 {
		status, msg := Classify(ErrNoMatch)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
