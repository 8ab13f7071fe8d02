package domain

import (
	"context"
	"time"
)

// AuthContext is the decoded token payload attached to an authenticated request.
// It lives only as long as the request that carries it.
type AuthContext struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type authContextKey struct{}

// WithAuthContext returns a copy of ctx carrying ac.
func WithAuthContext(ctx context.Context, ac *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, ac)
}

// AuthFromContext returns the AuthContext attached by the access guard, if any.
func AuthFromContext(ctx context.Context) (*AuthContext, bool) {
	ac, ok := ctx.Value(authContextKey{}).(*AuthContext)
	return ac, ok && ac != nil
}

// CheckOwnership is the secondary authorization layer applied after the role
// policy: the caller must be the resource owner.
func CheckOwnership(ownerID string, ac *AuthContext) error {
	if ac == nil || ownerID == "" || ownerID != ac.UserID {
		return ErrForbidden
	}
	return nil
}
