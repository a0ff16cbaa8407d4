package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/repository"
)

// ProjectHandler implements the portfolio CRUD endpoints.  Reads are public;
// mutations are admin-only and clear the public response cache.
type ProjectHandler struct {
	Projects *repository.ProjectRepo
	Cache    *middleware.CacheBuster
}

func NewProjectHandler(p *repository.ProjectRepo, cache *middleware.CacheBuster) *ProjectHandler {
	return &ProjectHandler{Projects: p, Cache: cache}
}

// List handles GET /api/projects.  Full collection, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.Projects.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return okCount(c, http.StatusOK, len(projects), projects)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Project not found")
	}
	p, err := h.Projects.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Project not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, p)
}

// Create handles POST /api/projects (admin).
func (h *ProjectHandler) Create(c echo.Context) error {
	var p model.Project
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if msgs := p.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	if err := h.Projects.Create(c.Request().Context(), &p); err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusCreated, p)
}

// Update handles PUT /api/projects/:id (admin).  The payload is revalidated
// on every write.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Project not found")
	}
	var p model.Project
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if msgs := p.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	updated, err := h.Projects.Update(c.Request().Context(), id, &p)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Project not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/projects/:id (admin).
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "Project not found")
	}
	if err := h.Projects.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "Project not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	h.Cache.Bust(c.Request().Context())
	return ok(c, http.StatusOK, echo.Map{})
}

// parseID reads the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
