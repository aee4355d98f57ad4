package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmolina/parroquia-api/internal/utils"
)

// SessionAuth returns an Echo middleware that fully verifies the session
// cookie (signature and expiry) and injects the identity claims into the
// request context.  Every admin API route runs through this: the cheap
// presence-only page guard is never sufficient authorization on its own.
// Handlers read the caller via c.Get("user_id") / "email" / "nombre" /
// "role".
func SessionAuth(secret, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "No autenticado",
					"reason":  "no_session",
				})
			}
			claims, err := utils.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "Sesión inválida o expirada",
					"reason":  "invalid_session",
				})
			}
			c.Set("user_id", claims.Subject)
			c.Set("email", claims.Email)
			c.Set("nombre", claims.Nombre)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
