package ports

import (
	"context"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional; defaults to worker
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier decodes and validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*domain.AuthContext, error)
}

// TokenIssuer signs tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// PasswordHasher is a one-way hash and verify pair.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
