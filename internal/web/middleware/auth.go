package middleware

import (
	"net/http"
	"strings"

	"github.com/iparr-biocorellc/backoffice/internal/auth"
	"github.com/iparr-biocorellc/backoffice/internal/logging"
)

// SessionAuth returns middleware that requires a valid bearer session token
// on every request it wraps. The sign-in and sign-up routes stay outside it.
func SessionAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			if _, err := tokens.ParseToken(tokenStr); err != nil {
				logging.FromContext(r.Context()).Warn("rejected session token",
					"path", r.URL.Path,
					"method", r.Method,
				)
				http.Error(w, "invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
