package router // package router defines how HTTP routes are registered for the API

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/devdynamic/studio-backend/internal/handler"
)

// RegisterRoutes registers routes that require no authentication and no
// resource handler: the health check used by load balancers and the
// connectivity probe used by the frontend.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/api/test", handler.APITest)
}

// NewHTTPErrorHandler returns Echo's error handler replacement.  Every
// uncaught error leaves the process in the standard envelope: unmatched
// routes produce a 404 naming the path, echo.HTTPErrors keep their status,
// and anything else collapses to a generic 500 so internal details never
// reach the client.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := "Server Error"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if status == http.StatusNotFound {
				msg = "Route " + c.Request().URL.Path + " not found"
			} else if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		_ = c.JSON(status, echo.Map{"success": false, "error": msg})
	}
}
