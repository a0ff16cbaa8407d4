package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devdynamic/studio-backend/internal/utils"
)

// newAuthRequest runs the Authenticate middleware against a request with the
// given Authorization header.  The user repository is nil on purpose: every
// rejection below must happen before the store is consulted, and a nil repo
// would panic if that contract were broken.
func newAuthRequest(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate("test-secret", nil)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rec := newAuthRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Not authorized")
}

func TestAuthenticateNotBearer(t *testing.T) {
	rec := newAuthRequest(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	rec := newAuthRequest(t, "Bearer this.is.garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized")
}

func TestAuthenticateWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, "admin", 60)
	require.NoError(t, err)
	rec := newAuthRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken("test-secret", 1, "admin", -1)
	require.NoError(t, err)
	rec := newAuthRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
