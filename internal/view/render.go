package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jaekwang-park/todo-lists/internal/session"
)

// Page is everything one render needs.
type Page struct {
	Name  string
	Title string
	Flash session.Flash
	Data  any
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{pages: newTemplates()}
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, p Page) error {
	body, err := r.Execute(p)
	if err != nil {
		return err
	}
	return WriteHTML(w, status, body)
}

// Execute renders the page without touching the response.
func (r *Renderer) Execute(p Page) ([]byte, error) {
	tmpl, ok := r.pages[p.Name]
	if !ok {
		return nil, fmt.Errorf("view: unknown page %q", p.Name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return nil, fmt.Errorf("view: render %s: %w", p.Name, err)
	}
	return buf.Bytes(), nil
}

func WriteHTML(w http.ResponseWriter, status int, body []byte) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}
