package mwauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"cafeBooker/internal/auth"
	"cafeBooker/internal/lib/api/response"
)

type ctxKey struct{}

// TokenParser validates a raw Bearer token.
type TokenParser interface {
	ParseToken(raw string) (auth.Claims, error)
}

// New returns a middleware that picks up an optional Bearer token and stores
// its claims in the request context. Requests without a valid token pass
// through unauthenticated; routes that need an admin add RequireAdmin on top.
func New(parser TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				if claims, err := parser.ParseToken(raw); err == nil {
					ctx := context.WithValue(r.Context(), ctxKey{}, claims)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAdmin rejects requests whose context lacks admin claims.
func RequireAdmin() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r.Context()) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("admin authorization required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// IsAdmin reports whether the request carries verified admin claims.
func IsAdmin(ctx context.Context) bool {
	claims, ok := ctx.Value(ctxKey{}).(auth.Claims)
	return ok && claims.Admin
}

// Username returns the authenticated username, or an empty string.
func Username(ctx context.Context) string {
	claims, _ := ctx.Value(ctxKey{}).(auth.Claims)
	return claims.Username
}

// WithClaims injects claims directly; used by handler tests.
func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}
