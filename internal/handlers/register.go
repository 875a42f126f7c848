package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/daily-quote/internal/logger"
	"github.com/sbilibin2017/daily-quote/internal/services"
	"github.com/sbilibin2017/daily-quote/internal/web"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, firstName, middleName, lastName, username, password string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// Registration implicitly logs the new user in.
// @Summary Register a new user
// @Description Creates a new user account from the registration form, then starts a session.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param first_name formData string true "First name"
// @Param second_name formData string false "Middle name"
// @Param last_name formData string true "Last name"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Success 303 {string} string "Redirect to /home"
// @Failure 200 {string} string "Registration form re-rendered with an error message"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, sess SessionCreator, pages *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			pages.Render(w, "register.html", web.RegisterPage{})
			return
		}

		firstName := strings.TrimSpace(r.FormValue("first_name"))
		middleName := strings.TrimSpace(r.FormValue("second_name"))
		lastName := strings.TrimSpace(r.FormValue("last_name"))
		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))
		confirmPassword := strings.TrimSpace(r.FormValue("confirm_password"))

		// Middle name is the only optional field.
		if firstName == "" || lastName == "" || username == "" || password == "" || confirmPassword == "" {
			pages.Render(w, "register.html", web.RegisterPage{Error: "Please fill in all required fields."})
			return
		}

		if password != confirmPassword {
			pages.Render(w, "register.html", web.RegisterPage{Error: "Passwords do not match."})
			return
		}

		err := svc.Register(r.Context(), firstName, middleName, lastName, username, password)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				pages.Render(w, "register.html", web.RegisterPage{Error: "Username already exists. Please choose another."})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			pages.Render(w, "register.html", web.RegisterPage{Error: "Internal server error. Please try again."})
			return
		}

		token, err := sess.Create(r.Context(), username)
		if err != nil {
			logger.Log.Errorw("failed to create session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			pages.Render(w, "register.html", web.RegisterPage{Error: "Internal server error. Please try again."})
			return
		}

		sess.SetCookie(w, token)
		http.Redirect(w, r, "/home", http.StatusSeeOther)
	}
}
