package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoleCheck(t *testing.T, boundRole string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if boundRole != "" {
		c.Set(CtxRole, boundRole)
	}

	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := runRoleCheck(t, "admin", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	rec := runRoleCheck(t, "user", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	// The message names both the actual role and the required set.
	assert.Contains(t, rec.Body.String(), "User role user")
	assert.Contains(t, rec.Body.String(), "Required roles: admin")
}

func TestRequireRoleForbidsMissingRole(t *testing.T) {
	rec := runRoleCheck(t, "", "admin")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	rec := runRoleCheck(t, "user", "admin", "user")
	assert.Equal(t, http.StatusOK, rec.Code)
}
