package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOkEnvelope(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, ok(c, http.StatusOK, echo.Map{"id": 1}))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "error")
}

func TestOkCountEnvelope(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, okCount(c, http.StatusOK, 2, []string{"a", "b"}))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
}

func TestFailEnvelope(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, fail(c, http.StatusNotFound, "Project not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Project not found", body["error"])
	assert.NotContains(t, body, "data")
}

func TestFailValidationEnvelope(t *testing.T) {
	c, rec := newTestContext()
	msgs := []string{"Please add a title", "Please add content"}
	require.NoError(t, failValidation(c, msgs))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Success bool     `json:"success"`
		Error   []string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, msgs, body.Error)
}
