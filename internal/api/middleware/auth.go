package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/warnaku/warnaku/internal/api/response"
	"github.com/warnaku/warnaku/internal/token"
)

const claimsKey contextKey = "claims"

// Auth is middleware that extracts the Authorization bearer token and
// verifies it. Missing tokens return 401; malformed or expired tokens also
// return 401. The decoded claims are trusted verbatim for the rest of the
// request: a flag revoked after issuance stays live until the token expires.
func Auth(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				response.Error(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					response.Error(w, http.StatusUnauthorized, "Token has expired")
					return
				}
				response.Error(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims retrieves the verified credential claims from the request context.
func GetClaims(ctx context.Context) *token.Claims {
	if c, ok := ctx.Value(claimsKey).(*token.Claims); ok {
		return c
	}
	return nil
}

// CallerID returns the authenticated user's UUID from the context claims.
func CallerID(ctx context.Context) (uuid.UUID, bool) {
	claims := GetClaims(ctx)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
