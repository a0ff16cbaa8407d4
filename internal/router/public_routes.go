package router

import (
	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/handler"
)

// RegisterPublic registers the unauthenticated surface: portfolio and blog
// reads (behind the response cache when Redis is up) and the contact form
// submission.  The contact endpoint is write-only for visitors and carries
// no throttle.
func RegisterPublic(e *echo.Echo, p *handler.ProjectHandler, b *handler.BlogHandler, ct *handler.ContactHandler, cache echo.MiddlewareFunc) {
	// Cached public reads.  Drafts are not filtered from blog reads; the
	// store-level collection is returned as-is.
	e.GET("/api/projects", p.List, cache)
	e.GET("/api/projects/:id", p.Get, cache)
	e.GET("/api/blogs", b.List, cache)
	e.GET("/api/blogs/:id", b.Get, cache)

	// The one public write.
	e.POST("/api/contact", ct.Create)
}
