package ports

import (
	"context"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// JobFilter narrows a job listing. The zero value matches every job.
type JobFilter struct {
	PostedBy string
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	// Create inserts job and sets its ID.
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns matching jobs newest first, with the poster resolved.
	List(ctx context.Context, filter JobFilter) ([]domain.JobListing, error)
	// Delete removes the job. A missing job yields domain.ErrJobNotFound.
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	// Create inserts app and sets its ID. A second application by the same
	// applicant to the same job yields domain.ErrAlreadyApplied.
	Create(ctx context.Context, app *domain.Application) error
	Exists(ctx context.Context, jobID, applicantID string) (bool, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.ApplicationView, error)
	// List returns every application newest first.
	List(ctx context.Context) ([]domain.ApplicationView, error)
	DeleteByJob(ctx context.Context, jobID string) (int64, error)
}
