package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/logger"
	"github.com/sbilibin2017/student-records/internal/middlewares"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/sbilibin2017/student-records/internal/views"
)

// PageRenderer renders an HTML page.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page) error
}

// Flash message texts.
const (
	msgMissingRequired = "Roll number and Name are required."
	msgFieldTooLong    = "One of the fields is too long."
	msgDuplicateOnAdd  = "A student with that roll number already exists."
	msgDuplicateOnEdit = "Another student already uses that roll number."
	msgAdded           = "Student added successfully."
	msgUpdated         = "Student updated successfully."
	msgDeleted         = "Student deleted."
	msgStudentNotFound = "Student not found."
	msgInternalError   = "Something went wrong. Please try again."
)

// Form fields of the add and edit pages.
const (
	formFieldRollNo     = "roll_no"
	formFieldName       = "name"
	formFieldEmail      = "email"
	formFieldDepartment = "department"
	formFieldDOB        = "dob"
)

const studentsPath = "/students"

// parseID reads the {id} URL parameter. ok is false for anything that is
// not a non-negative integer.
func parseID(r *http.Request) (id int64, ok bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// parseForm reads the student fields of a submitted form.
// Missing fields read as empty strings.
func parseForm(r *http.Request) models.StudentForm {
	return models.StudentForm{
		RollNo:     r.PostFormValue(formFieldRollNo),
		Name:       r.PostFormValue(formFieldName),
		Email:      r.PostFormValue(formFieldEmail),
		Department: r.PostFormValue(formFieldDepartment),
		DOB:        r.PostFormValue(formFieldDOB),
	}
}

// logError logs at error level with the id the logging middleware gave the request.
func logError(r *http.Request, msg string, keysAndValues ...any) {
	kv := append([]any{"request_id", middlewares.RequestIDFromContext(r.Context())}, keysAndValues...)
	logger.Log.Errorw(msg, kv...)
}

// render pops the pending flash message and renders the page with it.
func render(w http.ResponseWriter, r *http.Request, renderer PageRenderer, flashes flash.Store, status int, name, title string, data any) {
	msg, err := flashes.Pop(w, r)
	if err != nil {
		logError(r, "failed to read flash message", "error", err)
	}

	page := views.Page{Title: title, Flash: msg, Data: data}
	if err := renderer.Render(w, status, name, page); err != nil {
		logError(r, "failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderError renders the error page without consuming the flash message.
func renderError(w http.ResponseWriter, renderer PageRenderer, status int, text string) {
	page := views.Page{Title: http.StatusText(status), Data: text}
	if err := renderer.Render(w, status, views.PageError, page); err != nil {
		logger.Log.Errorw("failed to render error page", "status", status, "error", err)
		http.Error(w, text, status)
	}
}

// redirectWithFlash stores msg and redirects to target with 303 See Other.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, flashes flash.Store, target string, msg flash.Message) {
	if err := flashes.Set(w, r, msg); err != nil {
		logError(r, "failed to store flash message", "error", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
