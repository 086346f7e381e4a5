package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warnaku/warnaku/internal/api/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.JSON(w, http.StatusCreated, map[string]string{"name": "Sari"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Sari"}`, w.Body.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.Error(w, http.StatusNotFound, "Profile not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, w.Body.String())
}

func TestMessage(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.Message(w, "Logged out successfully")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())
}
