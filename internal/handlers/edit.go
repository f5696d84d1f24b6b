package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/sbilibin2017/student-records/internal/views"
)

const editPath = "/student/edit/{id}"

func editURL(id int64) string {
	return fmt.Sprintf("/student/edit/%d", id)
}

// NewEditFormHandler returns an HTTP handler rendering the edit form
// prefilled with the stored student.
func NewEditFormHandler(svc StudentGetter, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
			return
		}

		student, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrStudentNotFound) {
				renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
				return
			}
			logError(r, "failed to load student", "id", id, "error", err)
			renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			return
		}

		render(w, r, renderer, flashes, http.StatusOK, views.PageForm, "Edit student", views.FormData{
			Action:     "Edit",
			FormAction: editURL(id),
			Student:    student.Form(),
		})
	}
}

// NewEditHandler returns an HTTP handler updating a student from the
// submitted form. An unknown id answers 404; invalid or duplicate input
// redirects back to the edit form without touching the record.
func NewEditHandler(svc StudentUpdater, renderer PageRenderer, flashes flash.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r)
		if !ok {
			renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
			return
		}

		err := svc.Update(r.Context(), id, parseForm(r))
		if err != nil {
			switch {
			case errors.Is(err, models.ErrStudentNotFound):
				renderError(w, renderer, http.StatusNotFound, msgStudentNotFound)
			case errors.Is(err, models.ErrMissingRequired):
				redirectWithFlash(w, r, flashes, editURL(id), flash.Message{Kind: flash.KindDanger, Text: msgMissingRequired})
			case errors.Is(err, models.ErrFieldTooLong):
				redirectWithFlash(w, r, flashes, editURL(id), flash.Message{Kind: flash.KindDanger, Text: msgFieldTooLong})
			case errors.Is(err, models.ErrDuplicateRollNo):
				redirectWithFlash(w, r, flashes, editURL(id), flash.Message{Kind: flash.KindDanger, Text: msgDuplicateOnEdit})
			default:
				logError(r, "internal server error", "error", err)
				renderError(w, renderer, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		redirectWithFlash(w, r, flashes, studentsPath, flash.Message{Kind: flash.KindSuccess, Text: msgUpdated})
	}
}

// RegisterEditFormHandler registers the edit form route
func RegisterEditFormHandler(r chi.Router, h http.HandlerFunc) {
	r.Get(editPath, h)
}

// RegisterEditHandler registers the edit submission route
func RegisterEditHandler(r chi.Router, h http.HandlerFunc) {
	r.Post(editPath, h)
}
