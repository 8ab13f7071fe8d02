package ports

import (
	"context"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts user and returns the stored copy with its ID set.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes the user. A missing user yields domain.ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}
