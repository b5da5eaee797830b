package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "adminToken"

// Principal is the resolved admin identity for a request. It is attached to
// the context by ResolvePrincipal; handlers read it explicitly instead of
// relying on ambient request mutation.
type Principal struct {
	AdminID uuid.UUID
	Email   string
}

// TokenValidator validates a session token and returns the identity it carries.
type TokenValidator interface {
	Validate(token string) (adminID uuid.UUID, email string, err error)
}

type principalKey struct{}

// GetPrincipal retrieves the resolved admin principal from the context.
// The second return value reports whether a principal is attached.
func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// WithPrincipal attaches a principal to the context. Exposed for tests.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// ResolvePrincipal reads the session cookie, validates it, and attaches the
// resulting Principal to the context. An absent or invalid cookie is not an
// error here: the request continues anonymous and route-level guards decide.
func ResolvePrincipal(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			adminID, email, err := validator.Validate(cookie.Value)
			if err != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "session cookie rejected",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{AdminID: adminID, Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests that carry no resolved principal.
func RequireAdmin(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetPrincipal(r.Context()); !ok {
				ctx := r.Context()
				logger.WarnContext(ctx, "unauthorized access - missing admin session",
					"path", r.URL.Path,
					"request_id", GetRequestID(ctx),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Admin session required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
