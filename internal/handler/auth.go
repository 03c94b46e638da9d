package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/service"
	"github.com/roomanalam/My-blog/internal/view"
)

const sessionCookieName = "auth_token"

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleRegisterForm renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, popFlash(w, r), "", "")
}

// HandleRegister processes a registration submission. On success the new
// user is logged in immediately and redirected to the post listing.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	name := r.PostFormValue("name")
	password := r.PostFormValue("password")

	user, err := h.auth.Register(r.Context(), email, name, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			h.renderRegister(w, r, "User already exists, please try with another email!", email, name)
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderRegister(w, r, err.Error(), email, name)
		default:
			slog.Error("register user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.auth.TokenFor(user)
	if err != nil {
		slog.Error("issue session token after register", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLoginForm renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, popFlash(w, r), "")
}

// HandleLogin processes a login submission.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.renderLogin(w, r, "The email does not exist, please try again.", email)
		case errors.Is(err, domain.ErrUnauthorized):
			h.renderLogin(w, r, "Password incorrect, please try again.", email)
		default:
			slog.Error("login user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to the login page.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours, matching token expiry
	})
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, flash, email, name string) {
	data := view.AuthFormData{
		Page:  view.Page{Title: "Register", Flash: flash},
		Email: email,
		Name:  name,
	}
	if err := view.Render(w, "register.html", data); err != nil {
		slog.Error("render register page", "error", err)
	}
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, flash, email string) {
	data := view.AuthFormData{
		Page:  view.Page{Title: "Log In", Flash: flash},
		Email: email,
	}
	if err := view.Render(w, "login.html", data); err != nil {
		slog.Error("render login page", "error", err)
	}
}
