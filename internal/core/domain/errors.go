package domain

import "errors"

// Authentication failures. All of them surface to clients as the same 401.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrMalformedToken    = errors.New("malformed token")
	ErrInvalidSignature  = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")
)

// Conflicts.
var (
	ErrUserExists     = errors.New("user already exists")
	ErrAlreadyApplied = errors.New("already applied to this job")
)

// Missing resources.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
)

// IsAuthenticationError reports whether err is one of the token or header
// failures produced by the access guard.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrMissingCredential) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrTokenExpired)
}
