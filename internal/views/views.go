// Package views renders the HTML pages from the embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/models"
)

// Page names.
const (
	PageIndex = "index"
	PageList  = "list"
	PageForm  = "form"
	PageError = "error"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the value every template is executed with.
type Page struct {
	Title string
	Flash *flash.Message
	Data  any
}

// IndexData backs the home page.
type IndexData struct {
	Total  int
	Latest []models.StudentDB
}

// ListData backs the students page.
type ListData struct {
	Students []models.StudentDB
	Q        string
}

// FormData backs the add and edit pages.
type FormData struct {
	Action     string
	FormAction string
	Student    models.StudentForm
}

// Renderer executes the page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout together with every page.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PageList, PageForm, PageError} {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes the named page with the given status. The page is fully
// executed before anything is written, so a template error leaves w untouched.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
