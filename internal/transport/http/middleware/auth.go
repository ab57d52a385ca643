package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ainame-auth/internal/domain"
)

type contextKey string

const userIDKey contextKey = "user_id"

// TokenDecoder verifies a signed token of the expected kind and returns its user id.
type TokenDecoder interface {
	Decode(token string, expected domain.TokenKind) (int64, error)
}

// RequireAccess admits requests carrying a valid access token.
// Every rejection is 403.
func RequireAccess(dec TokenDecoder) func(http.Handler) http.Handler {
	return gate(dec, domain.TokenAccess, http.StatusForbidden)
}

// RequireRefresh admits requests carrying a valid refresh token.
// Every rejection is 401.
func RequireRefresh(dec TokenDecoder) func(http.Handler) http.Handler {
	return gate(dec, domain.TokenRefresh, http.StatusUnauthorized)
}

func gate(dec TokenDecoder, kind domain.TokenKind, status int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, status, "missing or invalid authorization header")
				return
			}
			uid, err := dec.Decode(strings.TrimPrefix(authHeader, "Bearer "), kind)
			if err != nil {
				writeJSONError(w, status, rejectMessage(kind, err))
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectMessage(kind domain.TokenKind, err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return string(kind) + " token expired"
	case errors.Is(err, domain.ErrTokenTypeMismatch):
		return "token type mismatch: " + string(kind) + " token required"
	default:
		return string(kind) + " token invalid"
	}
}

// UserIDFromContext returns the user id placed by RequireAccess or RequireRefresh.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
