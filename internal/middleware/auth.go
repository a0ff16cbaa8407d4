package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/devdynamic/studio-backend/internal/repository"
	"github.com/devdynamic/studio-backend/internal/utils"
)

// Context keys under which Authenticate binds the resolved identity.
const (
	CtxUser   = "user"    // sanitized model.User (password hash cleared)
	CtxUserID = "user_id" // uint64 subject id
	CtxRole   = "role"    // role string
)

// Authenticate returns the first gate of the authorization chain.  It
// extracts the Bearer token, verifies it, and resolves the subject against
// the users table.  Requests without a valid token are rejected with 401
// before the store is ever touched; a valid token whose subject has since
// been deleted is rejected with 401 "User no longer exists".  On success
// the resolved user (password excluded), its id and its role are bound to
// the request context for downstream middleware and handlers.
func Authenticate(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer <jwt>".  Anything else means the
			// caller is unauthenticated.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "error": "Not authorized to access this route",
				})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Signature, algorithm and expiry are all checked here; the
			// caller learns only that the token was rejected.
			userID, _, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "error": "Not authorized to access this route",
				})
			}

			// Tokens stay valid until natural expiry, so the subject must be
			// re-checked against the store on every request.
			u, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				if err == repository.ErrNotFound {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"success": false, "error": "User no longer exists",
					})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"success": false, "error": "Server Error",
				})
			}

			// Bind the sanitized user record.  The role comes from the
			// stored record, not the token, so role changes take effect
			// immediately.
			u.Password = ""
			c.Set(CtxUser, u)
			c.Set(CtxUserID, u.ID)
			c.Set(CtxRole, u.Role)
			return next(c)
		}
	}
}
