package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// SessionTokenMiddleware pulls the bearer token off the Authorization
// header. Token validation happens at the data API; here we only carry it.
func SessionTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		ctx := context.WithValue(r.Context(), "session_token", token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), "request_id", requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionToken(ctx context.Context) string {
	if token, ok := ctx.Value("session_token").(string); ok {
		return token
	}
	return ""
}
