package router

import (
	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/handler"
	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/repository"
)

// RegisterAuth registers the authentication endpoints under /api/auth.
// Register and login are open but throttled per client IP; /me requires a
// valid token; /verify-admin additionally requires the admin role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, users *repository.UserRepo, jwtSecret string, throttle echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register, throttle)
	g.POST("/login", a.Login, throttle)

	authed := g.Group("", middleware.Authenticate(jwtSecret, users))
	authed.GET("/me", a.Me)
	authed.GET("/verify-admin", a.VerifyAdmin, middleware.RequireRole("admin"))
}
