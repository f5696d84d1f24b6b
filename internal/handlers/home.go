package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/views"
)

// NewHomeHandler returns an HTTP handler rendering the total number of
// students and the most recently created ones.
func NewHomeHandler(svc SummaryGetter, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			logError(r, "failed to load summary", "error", err)
			renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			return
		}

		render(w, r, renderer, flashes, http.StatusOK, views.PageIndex, "Home", views.IndexData{
			Total:  summary.Total,
			Latest: summary.Latest,
		})
	}
}

// RegisterHomeHandler registers the home page route
func RegisterHomeHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/", h)
}
