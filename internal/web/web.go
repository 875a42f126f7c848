package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/sessions"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders the embedded HTML pages.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// WelcomePage is the data for the welcome/login page.
type WelcomePage struct {
	Error string
}

// RegisterPage is the data for the registration page.
type RegisterPage struct {
	Error string
}

// HomePage is the data for the dashboard.
type HomePage struct {
	Username        string
	Quote           string
	Author          string
	ShowPlaceholder bool
	Flashes         []sessions.Flash
}

// HistoryPage is the data for the previous quotes listing.
type HistoryPage struct {
	Username string
	Entries  []models.QuoteHistoryDB
}

// Render writes the named template to the response. Template errors at this
// point cannot be reported to the client cleanly, so they are logged only.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "error", err)
	}
}
