package api

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// memStore backs the user, job and application repositories in memory so the
// router can be exercised end to end without MongoDB.
type memStore struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
	jobs  map[string]*domain.Job
	apps  map[string]*domain.Application
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]*domain.User{},
		jobs:  map[string]*domain.Job{},
		apps:  map[string]*domain.Application{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) summary(userID string) *domain.UserSummary {
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	s := u.Summary()
	return &s
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	cp := *user
	cp.ID = r.nextID("user")
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) List(context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memJobs struct{ *memStore }

func (r memJobs) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = r.nextID("job")
	cp := *job
	r.jobs[cp.ID] = &cp
	return nil
}

func (r memJobs) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r memJobs) List(_ context.Context, filter ports.JobFilter) ([]domain.JobListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var jobs []*domain.Job
	for _, j := range r.jobs {
		if filter.PostedBy == "" || j.PostedBy == filter.PostedBy {
			jobs = append(jobs, j)
		}
	}
	sort.Slice(jobs, func(i, k int) bool { return jobs[i].CreatedAt.After(jobs[k].CreatedAt) })

	out := make([]domain.JobListing, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.JobListing{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Location:    j.Location,
			Salary:      j.Salary,
			PostedBy:    r.summary(j.PostedBy),
			CreatedAt:   j.CreatedAt,
		})
	}
	return out, nil
}

func (r memJobs) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type memApps struct{ *memStore }

func (r memApps) Create(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return domain.ErrAlreadyApplied
		}
	}
	app.ID = r.nextID("app")
	cp := *app
	r.apps[cp.ID] = &cp
	return nil
}

func (r memApps) Exists(_ context.Context, jobID, applicantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r memApps) ListByJob(_ context.Context, jobID string) ([]domain.ApplicationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views(func(a *domain.Application) bool { return a.JobID == jobID }), nil
}

func (r memApps) List(context.Context) ([]domain.ApplicationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.views(func(*domain.Application) bool { return true }), nil
}

func (r memApps) DeleteByJob(_ context.Context, jobID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, a := range r.apps {
		if a.JobID == jobID {
			delete(r.apps, id)
			n++
		}
	}
	return n, nil
}

// views resolves matching applications; callers hold the lock.
func (r memApps) views(match func(*domain.Application) bool) []domain.ApplicationView {
	out := make([]domain.ApplicationView, 0)
	for _, a := range r.apps {
		if !match(a) {
			continue
		}
		v := domain.ApplicationView{ID: a.ID, Applicant: r.summary(a.ApplicantID), AppliedAt: a.AppliedAt}
		if j, ok := r.jobs[a.JobID]; ok {
			v.Job = &domain.JobSummary{ID: j.ID, Title: j.Title}
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}
