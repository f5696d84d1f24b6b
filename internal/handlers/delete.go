package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/models"
)

// NewDeleteHandler returns an HTTP handler deleting a student.
func NewDeleteHandler(svc StudentDeleter, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, models.ErrStudentNotFound) {
				renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
				return
			}
			logError(r, "internal server error", "error", err)
			renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			return
		}

		redirectWithFlash(w, r, flashes, studentsPath, flash.Message{Kind: flash.KindWarning, Text: msgDeleted})
	}
}

// RegisterDeleteHandler registers the delete route
func RegisterDeleteHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/student/delete/{id}", h)
}
