package handler

import (
	"context"
	"net"
	"net/http"

	"github.com/roomanalam/My-blog/internal/domain"
	"github.com/roomanalam/My-blog/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// OptionalAuth is middleware that attempts to authenticate but does not block
// unauthenticated requests. If a valid session cookie is present, the user is
// injected into context; otherwise the request proceeds anonymously.
func OptionalAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err == nil && user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is middleware that gates post and comment management routes.
// The request proceeds only when a valid principal is present and its id
// matches the configured admin id; everyone else gets 403 Forbidden. Note
// that admin identity is required unconditionally, not merely the absence
// of anonymity.
func RequireAdmin(auth *service.AuthService, adminID int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err != nil || user.ID != adminID {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit rejects requests whose client IP has exceeded the limiter's
// budget. Applied to credential and comment POSTs.
func RateLimit(limiter *service.IPRateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !limiter.Allow(host) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders adds baseline security headers to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.User, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, err
	}

	userID, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
