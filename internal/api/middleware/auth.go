package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/domain"
)

// SessionReader is the part of the session controller the guards need.
type SessionReader interface {
	IsAuthenticated(ctx context.Context) bool
	Role(ctx context.Context) domain.Role
}

// Session requires a stored token and injects the decoded role into context.
// Anonymous callers are redirected to the login page.
func Session(s SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if !s.IsAuthenticated(ctx) {
				return c.Redirect(http.StatusSeeOther, domain.LoginPath)
			}

			c.Set("role", s.Role(ctx))
			return next(c)
		}
	}
}
