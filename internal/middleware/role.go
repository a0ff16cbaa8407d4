package middleware // middleware provides shared request processing for handlers

import (
	"fmt"      // fmt formats the forbidden message naming both role sets
	"net/http" // http defines standard HTTP status codes
	"strings"  // strings joins the required-role list

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns the second gate of the authorization chain.  It
// compares the role bound by Authenticate against an explicit allow-list
// and rejects mismatches with 403, naming the caller's actual role and the
// required set.  It must run after Authenticate.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	// Build a set of allowed roles for constant-time lookups.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"error": fmt.Sprintf(
						"User role %s is not authorized to access this route. Required roles: %s",
						role, strings.Join(roles, ", ")),
				})
			}
			return next(c)
		}
	}
}
