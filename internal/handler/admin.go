package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/repository"
)

// AdminHandler implements user management and the dashboard aggregations.
// Every route it serves sits behind the admin role gate.
type AdminHandler struct {
	Users    *repository.UserRepo
	Projects *repository.ProjectRepo
	Blogs    *repository.BlogRepo
	Contacts *repository.ContactRepo
}

func NewAdminHandler(u *repository.UserRepo, p *repository.ProjectRepo, b *repository.BlogRepo, ct *repository.ContactRepo) *AdminHandler {
	return &AdminHandler{Users: u, Projects: p, Blogs: b, Contacts: ct}
}

// ListUsers handles GET /api/admin/users.  Password hashes never serialize.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, users)
}

// GetUser handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "User not found")
	}
	u, err := h.Users.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	u.Password = ""
	return ok(c, http.StatusOK, u)
}

// UpdateUser handles PUT /api/admin/users/:id.  Only name, email and role
// are mutable; passwords never travel through this endpoint.  Downgrading
// the last admin's role is allowed -- only deletion is guarded.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "User not found")
	}
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	u := model.User{Name: req.Name, Email: req.Email, Role: req.Role}
	if msgs := u.Validate(); len(msgs) > 0 {
		return failValidation(c, msgs)
	}
	updated, err := h.Users.Update(c.Request().Context(), id, req.Name, req.Email, req.Role)
	if err != nil {
		switch err {
		case repository.ErrNotFound:
			return fail(c, http.StatusNotFound, "User not found")
		case repository.ErrEmailExists:
			return fail(c, http.StatusBadRequest, "User with this email already exists")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/admin/users/:id.  Deleting the last admin
// is refused; the count-and-delete runs atomically in the repository so
// concurrent deletions cannot race past the guard.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "User not found")
	}
	if err := h.Users.DeleteGuarded(c.Request().Context(), id); err != nil {
		switch err {
		case repository.ErrNotFound:
			return fail(c, http.StatusNotFound, "User not found")
		case repository.ErrLastAdmin:
			return fail(c, http.StatusBadRequest, "Cannot delete the last admin user")
		}
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
	return ok(c, http.StatusOK, echo.Map{})
}

// Dashboard handles GET /api/admin/dashboard: four collection totals,
// counted concurrently and joined before responding.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	var totalUsers, totalContacts, totalProjects, totalBlogs int

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) { totalUsers, err = h.Users.Count(ctx); return })
	g.Go(func() (err error) { totalContacts, err = h.Contacts.Count(ctx); return })
	g.Go(func() (err error) { totalProjects, err = h.Projects.Count(ctx); return })
	g.Go(func() (err error) { totalBlogs, err = h.Blogs.Count(ctx); return })
	if err := g.Wait(); err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}

	return ok(c, http.StatusOK, echo.Map{
		"totalUsers":    totalUsers,
		"totalContacts": totalContacts,
		"totalProjects": totalProjects,
		"totalBlogs":    totalBlogs,
	})
}

// monthWindow is one calendar month's inclusive boundaries plus its chart
// label.
type monthWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// lastSixMonths returns the trailing six calendar months, oldest first,
// ending with the month containing now (a partial month).  End is the last
// second of the month so a >=Start AND <=End query covers the whole month.
func lastSixMonths(now time.Time) []monthWindow {
	windows := make([]monthWindow, 0, 6)
	for i := 5; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		windows = append(windows, monthWindow{Start: start, End: end, Label: start.Format("Jan")})
	}
	return windows
}

// ChartData handles GET /api/admin/chart-data: per-month creation counts for
// the trailing six months.  All 24 counts are issued concurrently; the
// "visitors" series is synthetic, the per-month sum of contacts, projects
// and blogs.
func (h *AdminHandler) ChartData(c echo.Context) error {
	windows := lastSixMonths(time.Now().UTC())

	labels := make([]string, len(windows))
	users := make([]int, len(windows))
	contacts := make([]int, len(windows))
	projects := make([]int, len(windows))
	blogs := make([]int, len(windows))

	g, ctx := errgroup.WithContext(c.Request().Context())
	for i, w := range windows {
		i, w := i, w // per-iteration copies; required while go.mod targets go < 1.22
		labels[i] = w.Label
		g.Go(func() (err error) { users[i], err = h.Users.CountCreatedBetween(ctx, w.Start, w.End); return })
		g.Go(func() (err error) { contacts[i], err = h.Contacts.CountCreatedBetween(ctx, w.Start, w.End); return })
		g.Go(func() (err error) { projects[i], err = h.Projects.CountCreatedBetween(ctx, w.Start, w.End); return })
		g.Go(func() (err error) { blogs[i], err = h.Blogs.CountCreatedBetween(ctx, w.Start, w.End); return })
	}
	if err := g.Wait(); err != nil {
		return fail(c, http.StatusInternalServerError, "Server Error")
	}

	visitors := make([]int, len(windows))
	for i := range windows {
		visitors[i] = contacts[i] + projects[i] + blogs[i]
	}

	return ok(c, http.StatusOK, echo.Map{
		"labels":   labels,
		"visitors": visitors,
		"users":    users,
		"contacts": contacts,
		"projects": projects,
		"blogs":    blogs,
	})
}
