// Package auth orchestrates the OAuth handshake and credential issuance.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/warnaku/warnaku/internal/token"
	"github.com/warnaku/warnaku/internal/user"
)

// Service exchanges provider assertions for signed credentials, creating
// the user record on first login.
type Service struct {
	provider Provider
	users    user.Repository
	codec    *token.Codec
}

// NewService creates a new auth Service.
func NewService(provider Provider, users user.Repository, codec *token.Codec) *Service {
	return &Service{
		provider: provider,
		users:    users,
		codec:    codec,
	}
}

// LoginURL returns the provider consent URL for the given state.
func (s *Service) LoginURL(state string) string {
	return s.provider.LoginURL(state)
}

// HandleCallback completes the OAuth handshake: it exchanges the code for
// the provider's identity snapshot, looks the user up by subject id (creating
// one on first sight), and issues a credential.
func (s *Service) HandleCallback(ctx context.Context, code string) (string, error) {
	info, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging oauth code: %w", err)
	}

	u, err := s.users.GetByGoogleID(ctx, info.Subject)
	if errors.Is(err, user.ErrUserNotFound) {
		u = &user.User{
			GoogleID: info.Subject,
			Email:    info.Email,
			Name:     info.Name,
			Picture:  info.Picture,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return "", fmt.Errorf("creating user: %w", err)
		}
		slog.Info("new user created", "userId", u.ID, "email", u.Email)
	} else if err != nil {
		return "", fmt.Errorf("finding user: %w", err)
	}

	credential, err := s.codec.Issue(u)
	if err != nil {
		return "", fmt.Errorf("issuing credential: %w", err)
	}

	return credential, nil
}

// NewState returns a random state parameter for the consent URL.
func NewState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
