package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// authContext returns the AuthContext attached by the Auth middleware.
// Its absence means the route was mounted without the guard, so the request
// is treated as unauthenticated.
func authContext(c echo.Context) (*domain.AuthContext, error) {
	ac, ok := domain.AuthFromContext(c.Request().Context())
	if !ok {
		return nil, domain.ErrMissingCredential
	}
	return ac, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
