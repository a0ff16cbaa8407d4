// Package handler implements the HTTP resource controllers.  Every JSON
// response uses the envelope {success: bool, data|error}; list endpoints
// additionally carry a count.  Validation failures surface the message list
// as-is in the error field.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ok writes a success envelope.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// okCount writes a success envelope with a list count.
func okCount(c echo.Context, status int, count int, data any) error {
	return c.JSON(status, echo.Map{"success": true, "count": count, "data": data})
}

// fail writes a failure envelope with a single message.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// failValidation writes a 400 failure envelope carrying every field message.
func failValidation(c echo.Context, msgs []string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": msgs})
}
