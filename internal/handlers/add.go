package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/sbilibin2017/student-records/internal/views"
)

const addPath = "/student/add"

// NewAddFormHandler returns an HTTP handler rendering the empty add form.
func NewAddFormHandler(renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, flashes, http.StatusOK, views.PageForm, "Add student", views.FormData{
			Action:     "Add",
			FormAction: addPath,
		})
	}
}

// NewAddHandler returns an HTTP handler creating a student from the
// submitted form. Invalid or duplicate input redirects back to the form.
func NewAddHandler(svc StudentCreator, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := svc.Create(r.Context(), parseForm(r))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingRequired):
				redirectWithFlash(w, r, flashes, addPath, flash.Message{Kind: flash.KindDanger, Text: msgMissingRequired})
			case errors.Is(err, models.ErrFieldTooLong):
				redirectWithFlash(w, r, flashes, addPath, flash.Message{Kind: flash.KindDanger, Text: msgFieldTooLong})
			case errors.Is(err, models.ErrDuplicateRollNo):
				redirectWithFlash(w, r, flashes, addPath, flash.Message{Kind: flash.KindDanger, Text: msgDuplicateOnAdd})
			default:
				logError(r, "internal server error", "error", err)
				renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		redirectWithFlash(w, r, flashes, studentsPath, flash.Message{Kind: flash.KindSuccess, Text: msgAdded})
	}
}

// RegisterAddFormHandler registers the add form route
func RegisterAddFormHandler(r chi.Router, h http.HandlerFunc) {
	r.Get(addPath, h)
}

// RegisterAddHandler registers the add submission route
func RegisterAddHandler(r chi.Router, h http.HandlerFunc) {
	r.Post(addPath, h)
}
