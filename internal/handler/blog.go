package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/repository"
	"github.com/devdynamic/studio-backend/internal/utils"
)

// BlogHandler implements the article endpoints.  Reads are public and apply
// no status filtering: drafts are visible to anyone who asks.  Mutations
// are admin-only, re-derive the slug from the current title on every write,
// and clear the public response cache.
type BlogHandler struct {
	Blogs *repository.BlogRepo
	Cache *middleware.CacheBuster
}

func NewBlogHandler(b *repository.BlogRepo, cache *middleware.CacheBuster) *BlogHandler {
	return &BlogHandler{Blogs: b, Cache: cache}
}

// List handles GET /api/blogs.  Full collection with author names, newest
// first.
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.Blogs.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return okCount(c, http.StatusOK, len(blogs), blogs)
}

// Get handles GET /api/blogs/:id.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Blog not found")
	}
	b, err := h.Blogs.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Blog not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, b)
}

// Create handles POST /api/blogs (admin).  The authenticated admin becomes
// the author; the slug is derived from the title.
func (h *BlogHandler) Create(c echo.Context) error {
	var b model.Blog
	if err := c.Bind(&b); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if authorID, okCast := c.Get(middleware.CtxUserID).(uint64); okCast {
		b.AuthorID = authorID
	}
	b.Slug = utils.Slugify(b.Title)
	if msgs := b.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	if err := h.Blogs.Create(c.Request().Context(), &b); err != nil {
		if err == repository.ErrSlugExists {
			return failValidation(c, []string{"A blog with this title already exists"})
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusCreated, b)
}

// Update handles PUT /api/blogs/:id (admin).  The slug always follows the
// title in the payload, so renaming an article moves its URL.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Blog not found")
	}
	var b model.Blog
	if err := c.Bind(&b); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	current, err := h.Blogs.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Blog not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	// Author is immutable through this endpoint.
	b.AuthorID = current.AuthorID
	// A payload without a status keeps the stored one; the column never
	// leaves the draft|published enum.
	if b.Status == "" {
		b.Status = current.Status
	}
	b.Slug = utils.Slugify(b.Title)
	if msgs := b.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	updated, err := h.Blogs.Update(c.Request().Context(), id, &b)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return fail(c, http.StatusNotFound, "Blog not found")
		case repository.ErrSlugExists:
			return failValidation(c, []string{"A blog with this title already exists"})
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusOK, updated)
}

// UpdateStatus handles PATCH /api/blogs/:id/status (admin).  Only the closed
// enum is accepted; nothing else about the record changes.
func (h *BlogHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Blog not found")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if !model.ValidBlogStatus(req.Status) {
		return failValidation(c, []string{"Status must be either draft or published"})
	}
	updated, err := h.Blogs.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Blog not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/blogs/:id (admin).
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Blog not found")
	}
	if err := h.Blogs.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Blog not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusOK, echo.Map{})
}
