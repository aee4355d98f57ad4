package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminPageGuard protects the admin panel pages with a presence-only
// cookie check: no cookie means a redirect to the login page carrying the
// original path as a return target.  The cookie's signature is NOT checked
// here: a forged or expired cookie gets the page shell but every admin
// API call behind it re-verifies through SessionAuth, so this stays a
// cheap edge fast-path rather than an authorization decision.
//
// The login page itself is exempt; a cookie-bearing request for it is
// bounced to the admin home instead of showing the form again.
func AdminPageGuard(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			cookie, err := c.Cookie(cookieName)
			hasCookie := err == nil && cookie.Value != ""

			if strings.HasPrefix(path, "/admin/login") {
				if hasCookie {
					return c.Redirect(http.StatusFound, "/admin")
				}
				return next(c)
			}
			if !hasCookie {
				return c.Redirect(http.StatusFound,
					"/admin/login?redirect="+url.QueryEscape(path))
			}
			return next(c)
		}
	}
}
