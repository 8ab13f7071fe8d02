package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-api/internal/api/metrics"
	"github.com/jobportal/portal-api/internal/core/domain"
)

// Require enforces the role policy for action. It must run after Auth; a
// request without an AuthContext is treated as unauthenticated.
func Require(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if domain.IsPublic(action) {
				return next(c)
			}
			ac, ok := domain.AuthFromContext(c.Request().Context())
			if !ok {
				return domain.ErrMissingCredential
			}
			if !domain.Allowed(ac.Role, action) {
				metrics.AccessDeniedTotal.WithLabelValues(string(action), string(ac.Role)).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
