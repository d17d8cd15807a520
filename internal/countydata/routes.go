package countydata

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Post("/county_data", h.CountyData)
	// Alias matching the function platform's default /api/* routing.
	r.Post("/api/county_data", h.CountyData)

	return r
}
