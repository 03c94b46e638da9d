package handler

import (
	"net/http"
	"net/url"
)

const flashCookieName = "flash"

// setFlash stores a one-shot message shown on the next rendered page.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
