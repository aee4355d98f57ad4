package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/config"
	"github.com/dmolina/parroquia-api/internal/repository"
	"github.com/dmolina/parroquia-api/internal/utils"
)

// AuthHandler bundles dependencies for the session endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	if users == nil {
		panic("nil repository passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Role   string `json:"role"`
}

// Login verifies credentials and sets the session cookie.  A missing
// account, an inactive account and a wrong password all produce the exact
// same 401 payload so the endpoint cannot be used to enumerate emails.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Correo y contraseña son obligatorios")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := reqCtx(c)
	defer cancel()

	invalid := func() error {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"success": false, "error": "Credenciales inválidas",
		})
	}

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return invalid()
		}
		return fail(c, err, h.Cfg.IsProd())
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return invalid()
	}

	if err := h.Users.TouchLastLogin(ctx, u.ID); err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	token, exp, err := utils.NewSessionToken(h.Cfg.SessionSecret, u, h.Cfg.SessionTTLDays)
	if err != nil {
		return fail(c, err, h.Cfg.IsProd())
	}
	c.SetCookie(utils.SessionCookie(h.Cfg.SessionCookie, token, exp, h.Cfg.IsProd()))

	return ok(c, http.StatusOK, sessionUser{
		ID:     strconv.FormatUint(u.ID, 10),
		Email:  u.Email,
		Nombre: u.Nombre,
		Role:   u.Role,
	})
}

// Logout clears the session cookie unconditionally; it succeeds even
// without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(utils.ExpiredSessionCookie(h.Cfg.SessionCookie, h.Cfg.IsProd()))
	return ok(c, http.StatusOK, map[string]string{"message": "Sesión cerrada"})
}

// Session introspects the cookie and returns the embedded claims.  The two
// failure modes carry distinct reasons so the panel can tell "never logged
// in" from "session expired".
func (h *AuthHandler) Session(c echo.Context) error {
	cookie, err := c.Cookie(h.Cfg.SessionCookie)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"success": false, "error": "No autenticado", "reason": "no_session",
		})
	}
	claims, err := utils.ParseSessionToken(h.Cfg.SessionSecret, cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"success": false, "error": "Sesión inválida o expirada", "reason": "invalid_session",
		})
	}
	return ok(c, http.StatusOK, sessionUser{
		ID:     claims.Subject,
		Email:  claims.Email,
		Nombre: claims.Nombre,
		Role:   claims.Role,
	})
}
