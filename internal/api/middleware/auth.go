package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-api/internal/api/metrics"
	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// Auth validates the bearer token and attaches the decoded AuthContext to the
// request context. Failures are returned as domain errors; the HTTP error
// handler collapses all of them into one generic 401.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			ac, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithAuthContext(req.Context(), ac)))
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrMissingCredential
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", domain.ErrMissingCredential
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrMissingCredential
	}
	return token, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
