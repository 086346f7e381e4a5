// Package token issues and verifies the signed credential that carries a
// snapshot of a user's identity. Claims are embedded in the token itself,
// so validity is purely a function of signature and expiry: a claim revoked
// server-side stays live in already-issued tokens until they expire.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/warnaku/warnaku/internal/user"
)

// ErrTokenExpired is returned when a token's expiry is in the past.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned when a token is malformed or its signature
// does not verify.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the payload embedded in every credential.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a user UUID string.
func (c *Claims) UserID() string {
	return c.Subject
}

// Codec signs and verifies credentials with an HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec with the given signing secret and token lifetime.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed credential for the user.
func (c *Codec) Issue(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   u.Email,
		Name:    u.Name,
		Picture: u.Picture,
		IsAdmin: u.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify parses a credential and returns its claims. Expiry is compared
// against the wall clock with no leeway.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// DecodeUnverified extracts claims without checking the signature, the way
// the browser client decodes its stored token. Expiry is still enforced so
// a stale token resolves to logged-out.
func DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}
