// Package client is the HTTP API client the view state machine drives.
// It speaks the service's JSON wire format and carries the credential as a
// bearer token on every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warnaku/warnaku/internal/profile"
	"github.com/warnaku/warnaku/internal/view"
)

// APIError is a non-2xx response decoded from the {"error": "..."} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client calls the REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores the credential sent on subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the stored credential.
func (c *Client) Token() string { return c.token }

// ClearToken forgets the stored credential.
func (c *Client) ClearToken() { c.token = "" }

// LoginURL returns the endpoint the browser must visit to begin the OAuth
// handshake.
func (c *Client) LoginURL() string {
	return c.baseURL + "/auth/google"
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

type profileUpdate struct {
	Name              string `json:"name,omitempty"`
	UpdateLastUsed    bool   `json:"updateLastUsed,omitempty"`
	Achievement       string `json:"achievement,omitempty"`
	MinigameCompleted bool   `json:"minigameCompleted,omitempty"`
}

// ListProfiles fetches the caller's save slots.
func (c *Client) ListProfiles(ctx context.Context) ([]profile.Profile, error) {
	var profiles []profile.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateProfile creates a new save slot.
func (c *Client) CreateProfile(ctx context.Context, name string) (*profile.Profile, error) {
	var p profile.Profile
	body := map[string]string{"name": name}
	if err := c.do(ctx, http.MethodPost, "/api/profiles", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RenameProfile changes a save slot's display name.
func (c *Client) RenameProfile(ctx context.Context, id uuid.UUID, name string) (*profile.Profile, error) {
	return c.updateProfile(ctx, id, profileUpdate{Name: name})
}

// TouchProfile records that a save slot was just used.
func (c *Client) TouchProfile(ctx context.Context, id uuid.UUID) error {
	_, err := c.updateProfile(ctx, id, profileUpdate{UpdateLastUsed: true})
	return err
}

// UnlockAchievement marks a color lesson as completed.
func (c *Client) UnlockAchievement(ctx context.Context, id uuid.UUID, color profile.Color) (*profile.Profile, error) {
	return c.updateProfile(ctx, id, profileUpdate{Achievement: string(color)})
}

// RecordMinigameClear adds one minigame completion.
func (c *Client) RecordMinigameClear(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	return c.updateProfile(ctx, id, profileUpdate{MinigameCompleted: true})
}

func (c *Client) updateProfile(ctx context.Context, id uuid.UUID, upd profileUpdate) (*profile.Profile, error) {
	var p profile.Profile
	if err := c.do(ctx, http.MethodPut, "/api/profiles/"+id.String(), upd, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProfile removes a save slot.
func (c *Client) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/profiles/"+id.String(), nil, nil)
}

// CurrentUser fetches the identity snapshot carried by the stored credential.
func (c *Client) CurrentUser(ctx context.Context) (*UserInfo, error) {
	var resp struct {
		User UserInfo `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout calls the advisory logout endpoint and forgets the credential.
// The credential itself stays valid until it expires.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/auth/logout", nil, nil)
	c.ClearToken()
	return err
}

// UserInfo is the identity snapshot returned by /auth/user.
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	GoogleID     string    `json:"googleId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Picture      string    `json:"picture"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    string    `json:"createdAt"`
	ProfileCount int       `json:"profileCount"`
}

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalProfiles          int     `json:"totalProfiles"`
	AdminUsers             int     `json:"adminUsers"`
	RecentUsers            int     `json:"recentUsers"`
	AverageProfilesPerUser float64 `json:"averageProfilesPerUser"`
}

// AdminListUsers fetches every user with their profile count. Admin only.
func (c *Client) AdminListUsers(ctx context.Context) ([]AdminUser, error) {
	var users []AdminUser
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminStats fetches the dashboard aggregates. Admin only.
func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	var stats AdminStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminToggleAdmin flips a user's administrator flag. Admin only.
func (c *Client) AdminToggleAdmin(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodPut, "/api/admin/users/"+id.String()+"/toggle-admin", nil, nil)
}

// AdminDeleteUser removes a user and all their profiles. Admin only.
func (c *Client) AdminDeleteUser(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id.String(), nil, nil)
}

var _ view.Backend = (*Client)(nil)
