package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// UserInfo is the identity snapshot fetched from the OAuth provider.
type UserInfo struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Provider abstracts the OAuth handshake so the service can be tested
// without a live identity provider.
type Provider interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}

// GoogleConfig configures the Google OAuth provider. The endpoint URLs can
// be overridden in tests.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	Endpoint    oauth2.Endpoint
	UserInfoURL string
}

// GoogleProvider implements Provider against Google's OAuth 2.0 endpoints.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider creates a GoogleProvider requesting the profile and
// email scopes.
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = google.Endpoint
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}

	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
	}
}

// LoginURL returns the consent-screen URL the browser is redirected to.
func (p *GoogleProvider) LoginURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token and fetches the
// user's identity with it.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading userinfo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo fetch failed with status %d: %s", resp.StatusCode, body)
	}

	var info struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parsing userinfo response: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("empty subject in userinfo response")
	}

	return &UserInfo{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

var _ Provider = (*GoogleProvider)(nil)
