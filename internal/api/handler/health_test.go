package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warnaku/warnaku/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}

func TestHealth_DatabaseUp(t *testing.T) {
	h := handler.NewHealthHandler(&mockPinger{})

	req, w := makeChiRequest(http.MethodGet, "/api/health", nil, nil)

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "OK", env["status"])
	assert.Equal(t, "Server is running", env["message"])
	assert.Equal(t, "up", env["database"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	h := handler.NewHealthHandler(&mockPinger{err: errors.New("connection refused")})

	req, w := makeChiRequest(http.MethodGet, "/api/health", nil, nil)

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "OK", env["status"])
	assert.Equal(t, "down", env["database"])
}
