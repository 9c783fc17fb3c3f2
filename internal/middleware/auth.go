package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

type ctxKey string

const ctxUserIDKey ctxKey = "uid"

// UserID returns the authenticated user's ID stored by Auth.
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxUserIDKey).(string)
	return v, ok
}

// WithUserID is exposed for handler tests that bypass the middleware.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, id)
}

// UserLookup verifies that the token subject still exists. A token issued
// before the account was deleted must not authenticate.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

type AuthMiddleware struct {
	TM    *auth.TokenManager
	Users UserLookup
}

func NewAuthMiddleware(tm *auth.TokenManager, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{TM: tm, Users: users}
}

// Auth authenticates the request from its Bearer access token and stores the
// user ID in the context. Each failure mode gets its own 401 message.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.Fail(w, http.StatusUnauthorized, "Token absent", "")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.TM.ParseAccess(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				httpx.Fail(w, http.StatusUnauthorized, "Token expired", "")
				return
			}
			httpx.Fail(w, http.StatusUnauthorized, "Token invalid", "")
			return
		}

		if _, err := m.Users.GetByID(r.Context(), claims.UserID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				httpx.Fail(w, http.StatusUnauthorized, "User not found", "")
				return
			}
			httpx.Fail(w, http.StatusInternalServerError, "Authentication failed", err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	})
}
