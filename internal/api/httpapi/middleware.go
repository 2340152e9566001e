package httpapi

import (
	"context"
	"net/http"
	"strings"

	"teampulse-backend/internal/service"
)

type contextKey string

const userIDKey contextKey = "user-id"

// AuthMiddleware resolves the bearer credential into a user and injects the
// user id into the request context. Handlers behind it can assume a principal.
type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearer(r)

		user, err := m.auth.ResolveUser(r.Context(), token)
		if err != nil {
			writeError(w, service.ErrUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "bearer ") {
		return header[7:]
	}
	return header
}

// GetUserIDFromContext extracts the authenticated user id injected by the
// auth middleware.
func GetUserIDFromContext(ctx context.Context) (int32, error) {
	userID, ok := ctx.Value(userIDKey).(int32)
	if !ok {
		return 0, service.ErrUnauthenticated
	}
	return userID, nil
}
