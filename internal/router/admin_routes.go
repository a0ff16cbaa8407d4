package router

import (
	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/handler"
	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/repository"
)

// RegisterAdmin registers every admin-only endpoint.  The whole group runs
// the two-gate chain: Authenticate resolves the bearer token to a stored
// user, RequireRole demands the admin role.  Public routes never pass
// through either gate.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, p *handler.ProjectHandler, b *handler.BlogHandler, ct *handler.ContactHandler, users *repository.UserRepo, jwtSecret string) {
	g := e.Group(
		"/api",
		middleware.Authenticate(jwtSecret, users),
		middleware.RequireRole("admin"),
	)

	// ---- Projects (reads are public, mutations admin-only) ----
	g.POST("/projects", p.Create)
	g.PUT("/projects/:id", p.Update)
	g.DELETE("/projects/:id", p.Delete)

	// ---- Blogs ----
	g.POST("/blogs", b.Create)
	g.PUT("/blogs/:id", b.Update)
	g.PATCH("/blogs/:id/status", b.UpdateStatus)
	g.DELETE("/blogs/:id", b.Delete)

	// ---- Contacts (creation is the public route) ----
	// Static segments registered alongside /contact/:id; Echo matches
	// /contact/new and /contact/export before the parameter route.
	g.GET("/contact", ct.List)
	g.GET("/contact/new", ct.ListNew)
	g.GET("/contact/export", ct.Export)
	g.GET("/contact/:id", ct.Get)
	g.PATCH("/contact/:id/status", ct.UpdateStatus)
	g.DELETE("/contact/:id", ct.Delete)

	// ---- Admin dashboard and user management ----
	g.GET("/admin/dashboard", a.Dashboard)
	g.GET("/admin/chart-data", a.ChartData)
	g.GET("/admin/users", a.ListUsers)
	g.GET("/admin/users/:id", a.GetUser)
	g.PUT("/admin/users/:id", a.UpdateUser)
	g.DELETE("/admin/users/:id", a.DeleteUser)

	// ---- Admin-scoped aliases kept for the dashboard frontend ----
	g.GET("/admin/projects", p.List)
	g.POST("/admin/projects", p.Create)
	g.PUT("/admin/projects/:id", p.Update)
	g.DELETE("/admin/projects/:id", p.Delete)
	g.GET("/admin/blogs", b.List)
	g.POST("/admin/blogs", b.Create)
	g.PUT("/admin/blogs/:id", b.Update)
	g.DELETE("/admin/blogs/:id", b.Delete)
	g.GET("/admin/contacts", ct.List)
}
