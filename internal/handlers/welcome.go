package handlers

import (
	"net/http"

	"github.com/sbilibin2017/daily-quote/internal/web"
)

// NewWelcomeHandler returns an HTTP handler for the welcome/login page.
// @Summary Welcome page
// @Description Renders the login form. Entry point for anonymous users.
// @Tags pages
// @Produce html
// @Success 200 {string} string "Welcome page"
// @Router / [get]
func NewWelcomeHandler(pages *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Render(w, "welcome.html", web.WelcomePage{})
	}
}
