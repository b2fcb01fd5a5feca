package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drivncook/backoffice/internal/session"
)

// RequireAuth protects routes that need an active upstream session. An
// unauthenticated visitor is redirected to the login page.
func RequireAuth(sess *session.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sess.Authenticated() {
				return c.Redirect(http.StatusSeeOther, "/auth/login")
			}
			return next(c)
		}
	}
}
