package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a plain liveness endpoint for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// APITest confirms the API is reachable.  Kept for the frontend's
// connectivity probe.
func APITest(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Backend server is running!"})
}
