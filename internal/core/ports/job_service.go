package ports

import (
	"context"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// PostJobInput carries the fields of a new job posting.
type PostJobInput struct {
	Title       string
	Description string
	Location    string
	Salary      float64
}

// ApplicantsResult is the applicant list for a single job.
type ApplicantsResult struct {
	JobTitle        string
	TotalApplicants int
	Applicants      []domain.UserSummary
}

// JobService defines the job and application use cases.
type JobService interface {
	PostJob(ctx context.Context, ac *domain.AuthContext, input PostJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context) ([]domain.JobListing, error)
	ListMyJobs(ctx context.Context, ac *domain.AuthContext) ([]domain.JobListing, error)
	DeleteMyJob(ctx context.Context, ac *domain.AuthContext, jobID string) error
	Apply(ctx context.Context, ac *domain.AuthContext, jobID string) (*domain.Application, error)
	Applicants(ctx context.Context, ac *domain.AuthContext, jobID string) (*ApplicantsResult, error)
}

// AdminService defines the administrative use cases.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListJobs(ctx context.Context) ([]domain.JobListing, error)
	ListApplications(ctx context.Context) ([]domain.ApplicationView, error)
	DeleteUser(ctx context.Context, id string) error
	DeleteJob(ctx context.Context, id string) error
}
