package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/models"
)

// NewGetStudentAPIHandler returns an HTTP handler exposing a student as JSON.
// @Summary Get a student
// @Description Returns the fields of a single student record
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.StudentResponse "Student"
// @Failure 404 {object} models.StudentErrorResponse "Student not found"
// @Failure 500 {object} models.StudentErrorResponse "Internal server error"
// @Router /api/student/{id} [get]
func NewGetStudentAPIHandler(svc StudentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, ok := parseID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.StudentErrorResponse{
				Error: msgStudentNotFound,
			})
			return
		}

		student, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrStudentNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(models.StudentErrorResponse{
					Error: msgStudentNotFound,
				})
				return
			}
			logError(r, "internal server error", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.StudentErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewStudentResponse(student))
	}
}

// RegisterGetStudentAPIHandler registers the JSON student route
func RegisterGetStudentAPIHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/student/{id}", h)
}
