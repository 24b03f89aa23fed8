package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"clauselens/internal/contextutil"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID returns a copy of ctx carrying the user id. Exposed for tests.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Middleware verifies the bearer token on every request and stores the user
// id in the request context. Requests without a valid token get 401; the
// response never distinguishes missing from invalid credentials.
func (m *TokenManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := contextutil.LoggerFromContext(ctx)

		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeUnauthorized(w)
			return
		}

		userID, err := m.Verify(tokenString)
		if err != nil {
			logger.WarnContext(ctx, "rejected token", "error", err)
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
