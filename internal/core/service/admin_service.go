package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

type AdminService struct {
	users ports.UserRepository
	jobs  ports.JobRepository
	apps  ports.ApplicationRepository
	log   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, jobs ports.JobRepository, apps ports.ApplicationRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, jobs: jobs, apps: apps, log: log}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) ListJobs(ctx context.Context) ([]domain.JobListing, error) {
	jobs, err := s.jobs.List(ctx, ports.JobFilter{})
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *AdminService) ListApplications(ctx context.Context) ([]domain.ApplicationView, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}

// DeleteJob removes any job and its applications.
func (s *AdminService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.apps.DeleteByJob(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("job_id", id).Msg("failed to delete applications of job")
	}
	s.log.Info().Str("job_id", id).Msg("job deleted by admin")
	return nil
}
