package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warnaku/warnaku/internal/api/middleware"
)

func TestRecovery_PanicBecomes500(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	handler := middleware.Recovery(false)(panicking)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(w, req)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseErrorResponse(t, w)
	assert.Equal(t, "Something went wrong!", env["error"])
}

func TestRecovery_DevelopmentExposesDetail(t *testing.T) {
	t.Parallel()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("pool exhausted")
	})

	handler := middleware.Recovery(true)(panicking)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseErrorResponse(t, w)
	assert.Equal(t, "pool exhausted", env["error"])
}

func TestRecovery_PassThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(false)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
