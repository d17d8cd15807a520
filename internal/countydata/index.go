package countydata

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// Index renders a minimal page letting users try the API by hand.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Measures []string
	}{
		Measures: Measures(),
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
