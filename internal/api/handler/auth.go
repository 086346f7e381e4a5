package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/warnaku/warnaku/internal/api/middleware"
	"github.com/warnaku/warnaku/internal/api/response"
	"github.com/warnaku/warnaku/internal/auth"
)

// AuthHandler handles the OAuth handshake endpoints.
type AuthHandler struct {
	service   *auth.Service
	clientURL string
}

// NewAuthHandler creates a new AuthHandler. clientURL is the browser origin
// the callback redirects back to.
func NewAuthHandler(service *auth.Service, clientURL string) *AuthHandler {
	return &AuthHandler{service: service, clientURL: clientURL}
}

// Login handles GET /auth/google: redirect to the provider consent screen.
// No local state is created; the handshake is completed statelessly in the
// callback.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := auth.NewState()
	if err != nil {
		slog.Error("failed to generate oauth state", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to start login")
		return
	}

	http.Redirect(w, r, h.service.LoginURL(state), http.StatusFound)
}

// Callback handles GET /auth/google/callback. Any provider failure redirects
// back to the client with an error indicator rather than an HTTP error; the
// client branches on the presence of the token parameter.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" || r.URL.Query().Get("error") != "" {
		http.Redirect(w, r, h.clientURL+"?error=auth_failed", http.StatusFound)
		return
	}

	credential, err := h.service.HandleCallback(r.Context(), code)
	if err != nil {
		slog.Error("oauth callback failed", "error", err)
		http.Redirect(w, r, h.clientURL+"?error=auth_failed", http.StatusFound)
		return
	}

	http.Redirect(w, r, h.clientURL+"?token="+url.QueryEscape(credential), http.StatusFound)
}

// Logout handles GET /auth/logout. Credentials are stateless, so there is
// nothing to invalidate server-side; the endpoint is advisory.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Logged out successfully")
}

type currentUserResponse struct {
	User struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	} `json:"user"`
}

// CurrentUser handles GET /auth/user: the identity snapshot carried by the
// caller's credential.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var resp currentUserResponse
	resp.User.ID = claims.Subject
	resp.User.Email = claims.Email
	resp.User.Name = claims.Name
	resp.User.Picture = claims.Picture

	response.JSON(w, http.StatusOK, resp)
}
