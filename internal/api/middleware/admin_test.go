package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/warnaku/warnaku/internal/api/middleware"
	"github.com/warnaku/warnaku/internal/user"
)

func TestRequireAdmin_NoClaims(t *testing.T) {
	t.Parallel()

	handler := middleware.RequireAdmin()(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := parseErrorResponse(t, w)
	assert.Equal(t, "No token, authorization denied", env["error"])
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	t.Parallel()

	codec := testCodec(time.Hour)
	signed := issueFor(t, codec, &user.User{ID: uuid.New(), Email: "sari@example.com"})

	handler := middleware.Auth(codec)(middleware.RequireAdmin()(okHandler()))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := parseErrorResponse(t, w)
	assert.Equal(t, "Access denied. Admin only.", env["error"])
}

func TestRequireAdmin_Admin(t *testing.T) {
	t.Parallel()

	codec := testCodec(time.Hour)
	signed := issueFor(t, codec, &user.User{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true})

	handler := middleware.Auth(codec)(middleware.RequireAdmin()(okHandler()))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
