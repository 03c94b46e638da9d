package handler

import (
	"net/http"

	"github.com/roomanalam/My-blog/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Admin-gated
// routes require the configured admin principal; everything else is
// publicly reachable with optional authentication.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, posts *service.PostService, comments *service.CommentService, limiter *service.IPRateLimiter, adminID int64, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	postHandler := NewPostHandler(posts, comments, adminID)

	public := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(auth, h)
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimit(limiter, OptionalAuth(auth, h))
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(auth, adminID, h)
	}

	mux.Handle("GET /{$}", public(postHandler.HandleIndex))
	mux.Handle("GET /about", public(HandleAbout))
	mux.Handle("GET /contact", public(HandleContact))

	mux.Handle("GET /register", public(authHandler.HandleRegisterForm))
	mux.Handle("POST /register", limited(authHandler.HandleRegister))
	mux.Handle("GET /login", public(authHandler.HandleLoginForm))
	mux.Handle("POST /login", limited(authHandler.HandleLogin))
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)

	mux.Handle("GET /post/{id}", public(postHandler.HandleShow))
	mux.Handle("POST /post/{id}", limited(postHandler.HandleComment))

	mux.Handle("GET /new-post", admin(postHandler.HandleNewForm))
	mux.Handle("POST /new-post", admin(postHandler.HandleCreate))
	mux.Handle("GET /edit-post/{id}", admin(postHandler.HandleEditForm))
	mux.Handle("POST /edit-post/{id}", admin(postHandler.HandleEdit))
	mux.Handle("GET /delete/{id}", admin(postHandler.HandleDelete))
	mux.Handle("GET /delete-comment/{post_id}/{comment_id}", admin(postHandler.HandleDeleteComment))
	mux.Handle("POST /delete-comment/{post_id}/{comment_id}", admin(postHandler.HandleDeleteComment))

	mux.HandleFunc("GET /healthz", HandleHealthz)
}
