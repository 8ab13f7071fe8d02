package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// ApplyGuard abstracts the short-lived in-flight marker (Redis) that stops
// a double-submitted application from racing past the existence check.
type ApplyGuard interface {
	Acquire(ctx context.Context, jobID, applicantID string) (bool, error)
	Release(ctx context.Context, jobID, applicantID string) error
}

type nopApplyGuard struct{}

func (nopApplyGuard) Acquire(context.Context, string, string) (bool, error) { return true, nil }
func (nopApplyGuard) Release(context.Context, string, string) error         { return nil }

type JobService struct {
	jobs  ports.JobRepository
	apps  ports.ApplicationRepository
	guard ApplyGuard
	log   zerolog.Logger
}

// NewJobService wires the job use cases. guard may be nil.
func NewJobService(jobs ports.JobRepository, apps ports.ApplicationRepository, guard ApplyGuard, log zerolog.Logger) *JobService {
	if guard == nil {
		guard = nopApplyGuard{}
	}
	return &JobService{jobs: jobs, apps: apps, guard: guard, log: log}
}

// PostJob creates a job owned by the caller.
func (s *JobService) PostJob(ctx context.Context, ac *domain.AuthContext, in ports.PostJobInput) (*domain.Job, error) {
	if ac == nil {
		return nil, domain.ErrForbidden
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if in.Salary < 0 {
		return nil, fmt.Errorf("%w: salary must not be negative", domain.ErrValidation)
	}

	job := &domain.Job{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Salary:      in.Salary,
		PostedBy:    ac.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		s.log.Error().Err(err).Str("user_id", ac.UserID).Msg("failed to create job")
		return nil, fmt.Errorf("post job: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Str("user_id", ac.UserID).Msg("job posted")
	return job, nil
}

// ListJobs returns every job, newest first.
func (s *JobService) ListJobs(ctx context.Context) ([]domain.JobListing, error) {
	jobs, err := s.jobs.List(ctx, ports.JobFilter{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// ListMyJobs returns the jobs posted by the caller, newest first.
func (s *JobService) ListMyJobs(ctx context.Context, ac *domain.AuthContext) ([]domain.JobListing, error) {
	if ac == nil {
		return nil, domain.ErrForbidden
	}
	jobs, err := s.jobs.List(ctx, ports.JobFilter{PostedBy: ac.UserID})
	if err != nil {
		return nil, fmt.Errorf("list my jobs: %w", err)
	}
	return jobs, nil
}

// DeleteMyJob removes a job the caller owns, together with its applications.
func (s *JobService) DeleteMyJob(ctx context.Context, ac *domain.AuthContext, jobID string) error {
	job, err := s.ownedJob(ctx, ac, jobID)
	if err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	s.dropApplications(ctx, job.ID)

	s.log.Info().Str("job_id", job.ID).Str("user_id", ac.UserID).Msg("job deleted by owner")
	return nil
}

// Apply records the caller's application to jobID.
func (s *JobService) Apply(ctx context.Context, ac *domain.AuthContext, jobID string) (*domain.Application, error) {
	if ac == nil {
		return nil, domain.ErrForbidden
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, fmt.Errorf("%w: jobId is required", domain.ErrValidation)
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.apps.Exists(ctx, job.ID, ac.UserID)
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	acquired, err := s.guard.Acquire(ctx, job.ID, ac.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("job_id", job.ID).Msg("apply guard unavailable, relying on unique index")
	} else if !acquired {
		return nil, domain.ErrAlreadyApplied
	}

	app := &domain.Application{
		JobID:       job.ID,
		ApplicantID: ac.UserID,
		AppliedAt:   time.Now().UTC(),
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return nil, domain.ErrAlreadyApplied
		}
		if relErr := s.guard.Release(ctx, job.ID, ac.UserID); relErr != nil {
			s.log.Warn().Err(relErr).Str("job_id", job.ID).Msg("failed to release apply guard")
		}
		return nil, fmt.Errorf("apply: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Str("user_id", ac.UserID).Msg("application submitted")
	return app, nil
}

// Applicants lists who applied to a job the caller owns.
func (s *JobService) Applicants(ctx context.Context, ac *domain.AuthContext, jobID string) (*ports.ApplicantsResult, error) {
	job, err := s.ownedJob(ctx, ac, jobID)
	if err != nil {
		return nil, err
	}

	views, err := s.apps.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}

	applicants := make([]domain.UserSummary, 0, len(views))
	for _, v := range views {
		if v.Applicant != nil {
			applicants = append(applicants, *v.Applicant)
		}
	}

	// Applications whose applicant account is gone still count.
	return &ports.ApplicantsResult{
		JobTitle:        job.Title,
		TotalApplicants: len(views),
		Applicants:      applicants,
	}, nil
}

// ownedJob loads jobID and applies the ownership check.
func (s *JobService) ownedJob(ctx context.Context, ac *domain.AuthContext, jobID string) (*domain.Job, error) {
	if ac == nil {
		return nil, domain.ErrForbidden
	}
	job, err := s.jobs.FindByID(ctx, strings.TrimSpace(jobID))
	if err != nil {
		return nil, err
	}
	if err := domain.CheckOwnership(job.PostedBy, ac); err != nil {
		return nil, err
	}
	return job, nil
}

// dropApplications removes applications of a deleted job. Failure is logged
// and not returned: the job itself is already gone.
func (s *JobService) dropApplications(ctx context.Context, jobID string) {
	if _, err := s.apps.DeleteByJob(ctx, jobID); err != nil {
		s.log.Warn().Err(err).Str("job_id", jobID).Msg("failed to delete applications of job")
	}
}
