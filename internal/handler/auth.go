package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devdynamic/studio-backend/internal/config"
	"github.com/devdynamic/studio-backend/internal/middleware"
	"github.com/devdynamic/studio-backend/internal/model"
	"github.com/devdynamic/studio-backend/internal/repository"
	"github.com/devdynamic/studio-backend/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authData is the payload returned by register and login.
type authData struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// Register creates an account with the user role and returns it together
// with a signed access token.  Registration can never mint an admin.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Please provide name, email and password")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error registering user")
	}
	id, err := h.Users.Create(c.Request().Context(), req.Name, req.Email, hash, model.RoleUser)
	if err != nil {
		if err == repository.ErrEmailExists {
			return fail(c, http.StatusBadRequest, "User with this email already exists")
		}
		return fail(c, http.StatusInternalServerError, "Error registering user")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, model.RoleUser, h.Cfg.TokenTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error registering user")
	}
	return ok(c, http.StatusCreated, authData{
		ID: id, Name: req.Name, Email: req.Email, Role: model.RoleUser, Token: access.Token,
	})
}

// Login verifies credentials and returns the account with a fresh token.
// The same message covers unknown email and wrong password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Please provide email and password")
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return fail(c, http.StatusInternalServerError, "Error logging in")
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.TokenTTLMin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Error logging in")
	}
	return ok(c, http.StatusOK, authData{
		ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Token: access.Token,
	})
}

// Me returns the authenticated user bound by the gate, password excluded.
func (h *AuthHandler) Me(c echo.Context) error {
	u, okCast := c.Get(middleware.CtxUser).(model.User)
	if !okCast {
		return fail(c, http.StatusUnauthorized, "Not authorized to access this route")
	}
	return ok(c, http.StatusOK, u)
}

// VerifyAdmin confirms the caller holds the admin role.  The role gate on
// the route already enforces this; the handler only phrases the answer.
func (h *AuthHandler) VerifyAdmin(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Admin verification successful",
	})
}
