package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/validation"
	"github.com/sbilibin2017/student-records/internal/views"
)

// NewListHandler returns an HTTP handler listing students, filtered by the
// optional q query parameter.
func NewListHandler(svc StudentSearcher, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := validation.NormalizeQuery(r.URL.Query().Get("q"))

		students, err := svc.Search(r.Context(), q)
		if err != nil {
			logError(r, "failed to list students", "q", q, "error", err)
			renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			return
		}

		render(w, r, renderer, flashes, http.StatusOK, views.PageList, "Students", views.ListData{
			Students: students,
			Q:        q,
		})
	}
}

// RegisterListHandler registers the students list route
func RegisterListHandler(r chi.Router, h http.HandlerFunc) {
	r.Get(studentsPath, h)
}
