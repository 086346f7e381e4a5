package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/warnaku/warnaku/internal/auth"
)

func newFakeGoogle(t *testing.T, userinfoStatus int, userinfoBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fake-access-token","token_type":"Bearer"}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userinfoStatus)
		_, _ = w.Write([]byte(userinfoBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *auth.GoogleProvider {
	return auth.NewGoogleProvider(auth.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:5000/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
		UserInfoURL: srv.URL + "/userinfo",
	})
}

func TestGoogleProvider_LoginURL(t *testing.T) {
	t.Parallel()

	srv := newFakeGoogle(t, http.StatusOK, `{}`)
	provider := newTestProvider(srv)

	url := provider.LoginURL("state-xyz")
	assert.Contains(t, url, srv.URL+"/auth")
	assert.Contains(t, url, "state=state-xyz")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "scope=profile+email")
}

func TestGoogleProvider_Exchange(t *testing.T) {
	t.Parallel()

	srv := newFakeGoogle(t, http.StatusOK,
		`{"sub":"google-123","email":"sari@example.com","name":"Sari","picture":"https://example.com/sari.png"}`)
	provider := newTestProvider(srv)

	info, err := provider.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "google-123", info.Subject)
	assert.Equal(t, "sari@example.com", info.Email)
	assert.Equal(t, "Sari", info.Name)
	assert.Equal(t, "https://example.com/sari.png", info.Picture)
}

func TestGoogleProvider_Exchange_UserInfoError(t *testing.T) {
	t.Parallel()

	srv := newFakeGoogle(t, http.StatusUnauthorized, `{"error":"invalid_token"}`)
	provider := newTestProvider(srv)

	_, err := provider.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}

func TestGoogleProvider_Exchange_MissingSubject(t *testing.T) {
	t.Parallel()

	srv := newFakeGoogle(t, http.StatusOK, `{"email":"no-sub@example.com"}`)
	provider := newTestProvider(srv)

	_, err := provider.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}
