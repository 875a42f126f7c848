package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/models"
	"github.com/sbilibin2017/daily-quote/internal/services"
	"github.com/sbilibin2017/daily-quote/internal/web"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, error)
}

// SessionCreator establishes authenticated sessions and sets the session cookie.
type SessionCreator interface {
	Create(ctx context.Context, username string) (string, error)
	SetCookie(w http.ResponseWriter, token string)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates the user from the login form and starts a session.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303 {string} string "Redirect to /home"
// @Failure 200 {string} string "Login form re-rendered with an error message"
// @Router /login [post]
func NewLoginHandler(svc Loginer, sess SessionCreator, pages *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		if username == "" || password == "" {
			pages.Render(w, "welcome.html", web.WelcomePage{Error: "Please fill in all fields."})
			return
		}

		_, err := svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				pages.Render(w, "welcome.html", web.WelcomePage{Error: "Invalid username or password."})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			pages.Render(w, "welcome.html", web.WelcomePage{Error: "Internal server error. Please try again."})
			return
		}

		token, err := sess.Create(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("failed to create session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			pages.Render(w, "welcome.html", web.WelcomePage{Error: "Internal server error. Please try again."})
			return
		}

		sess.SetCookie(w, token)
		http.Redirect(w, r, "/home", http.StatusSeeOther)
	}
}
