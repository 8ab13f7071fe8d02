package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"missing credential", domain.ErrMissingCredential, http.StatusUnauthorized, "invalid or missing token"},
		{"malformed token", fmt.Errorf("%w: bad segment", domain.ErrMalformedToken), http.StatusUnauthorized, "invalid or missing token"},
		{"bad signature", domain.ErrInvalidSignature, http.StatusUnauthorized, "invalid or missing token"},
		{"expired", domain.ErrTokenExpired, http.StatusUnauthorized, "invalid or missing token"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"already applied", domain.ErrAlreadyApplied, http.StatusBadRequest, "You have already applied to this job"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"job not found", fmt.Errorf("find: %w", domain.ErrJobNotFound), http.StatusNotFound, "job not found"},
		{"validation", fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest, "validation failed: title is required"},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
		{"unexpected", errors.New("mongo: connection reset by peer"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Message != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, body.Message)
			}
		})
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}
