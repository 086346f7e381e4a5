package middleware

import (
	"net/http"

	"github.com/warnaku/warnaku/internal/api/response"
)

// RequireAdmin returns middleware that rejects non-admin identities with 403.
// The decision is made on the credential's embedded isAdmin claim alone.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r.Context())
			if claims == nil {
				response.Error(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			if !claims.IsAdmin {
				response.Error(w, http.StatusForbidden, "Access denied. Admin only.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
