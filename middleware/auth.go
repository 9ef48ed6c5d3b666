package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/emresolakcbu/Connectinno-Notes-Api/internal/auth"
	"github.com/emresolakcbu/Connectinno-Notes-Api/pkg/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFrom returns the verified identity attached by AuthMiddleware.
// The zero Identity is returned for unguarded requests.
func IdentityFrom(ctx context.Context) auth.Identity {
	ident, _ := ctx.Value(identityKey).(auth.Identity)
	return ident
}

// WithIdentity attaches a verified identity to the context. Exposed for tests
// that exercise handlers without the full middleware chain.
func WithIdentity(ctx context.Context, ident auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// AuthMiddleware guards a handler behind bearer-token verification. The token
// comes from the Authorization header, or from the "token" query parameter
// because the browser's WebSocket API doesn't support custom headers.
func AuthMiddleware(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.URL.Query().Get("token")

			if tokenString == "" {
				authHeader := r.Header.Get("Authorization")
				token, ok := strings.CutPrefix(authHeader, "Bearer ")
				if !ok || token == "" {
					unauthorized(w, "Unauthorized")
					return
				}
				tokenString = token
			}

			ident, err := verifier.Verify(r.Context(), tokenString)
			if err != nil {
				logger.Sugar.Debugf("Token verification failed: %v", err)
				unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
