package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGuardTTL = 30 * time.Second

// ApplyGuard marks an application as in flight so a double-submitted apply
// request cannot race past the existence check.
// Key format: apply:<job_id>:<applicant_id>
type ApplyGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewApplyGuard wraps client. A non-positive ttl falls back to 30s.
func NewApplyGuard(client redis.Cmdable, ttl time.Duration) *ApplyGuard {
	if ttl <= 0 {
		ttl = defaultGuardTTL
	}
	return &ApplyGuard{client: client, ttl: ttl}
}

// Acquire sets the marker if it is absent. It reports false when another
// request already holds it.
func (g *ApplyGuard) Acquire(ctx context.Context, jobID, applicantID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(jobID, applicantID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("apply guard acquire: %w", err)
	}
	return ok, nil
}

// Release drops the marker so a failed attempt can be retried at once.
func (g *ApplyGuard) Release(ctx context.Context, jobID, applicantID string) error {
	if err := g.client.Del(ctx, g.key(jobID, applicantID)).Err(); err != nil {
		return fmt.Errorf("apply guard release: %w", err)
	}
	return nil
}

func (g *ApplyGuard) key(jobID, applicantID string) string {
	return fmt.Sprintf("apply:%s:%s", jobID, applicantID)
}
