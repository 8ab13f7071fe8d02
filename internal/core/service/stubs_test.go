package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var errStore = errors.New("store unavailable")

type stubUserRepo struct {
	mu    sync.Mutex
	byID  map[string]*domain.User
	seq   int
	err   error // if set, every call returns it
	finds int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) summary(id string) *domain.UserSummary {
	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	s := u.Summary()
	return &s
}

type stubJobRepo struct {
	users *stubUserRepo
	jobs  []*domain.Job // insertion order
	seq   int
	err   error
}

func newStubJobRepo(users *stubUserRepo) *stubJobRepo {
	return &stubJobRepo{users: users}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	job.ID = fmt.Sprintf("job-%d", r.seq)
	clone := *job
	r.jobs = append(r.jobs, &clone)
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, j := range r.jobs {
		if j.ID == id {
			clone := *j
			return &clone, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context, f ports.JobFilter) ([]domain.JobListing, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.JobListing{}
	for i := len(r.jobs) - 1; i >= 0; i-- {
		j := r.jobs[i]
		if f.PostedBy != "" && j.PostedBy != f.PostedBy {
			continue
		}
		out = append(out, domain.JobListing{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Location:    j.Location,
			Salary:      j.Salary,
			PostedBy:    r.users.summary(j.PostedBy),
			CreatedAt:   j.CreatedAt,
		})
	}
	return out, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i, j := range r.jobs {
		if j.ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrJobNotFound
}

type stubAppRepo struct {
	users     *stubUserRepo
	jobs      *stubJobRepo
	apps      []*domain.Application
	seq       int
	err       error
	createErr error
}

func newStubAppRepo(users *stubUserRepo, jobs *stubJobRepo) *stubAppRepo {
	return &stubAppRepo{users: users, jobs: jobs}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return domain.ErrAlreadyApplied
		}
	}
	r.seq++
	app.ID = fmt.Sprintf("app-%d", r.seq)
	clone := *app
	r.apps = append(r.apps, &clone)
	return nil
}

func (r *stubAppRepo) Exists(_ context.Context, jobID, applicantID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAppRepo) view(a *domain.Application) domain.ApplicationView {
	v := domain.ApplicationView{ID: a.ID, Applicant: r.users.summary(a.ApplicantID), AppliedAt: a.AppliedAt}
	for _, j := range r.jobs.jobs {
		if j.ID == a.JobID {
			v.Job = &domain.JobSummary{ID: j.ID, Title: j.Title}
		}
	}
	return v
}

func (r *stubAppRepo) ListByJob(_ context.Context, jobID string) ([]domain.ApplicationView, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.ApplicationView{}
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, r.view(a))
		}
	}
	return out, nil
}

func (r *stubAppRepo) List(_ context.Context) ([]domain.ApplicationView, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.ApplicationView{}
	for i := len(r.apps) - 1; i >= 0; i-- {
		out = append(out, r.view(r.apps[i]))
	}
	return out, nil
}

func (r *stubAppRepo) DeleteByJob(_ context.Context, jobID string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	kept := r.apps[:0]
	var removed int64
	for _, a := range r.apps {
		if a.JobID == jobID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.apps = kept
	return removed, nil
}

type stubGuard struct {
	held       map[string]bool
	acquireErr error
	releases   int
}

func newStubGuard() *stubGuard {
	return &stubGuard{held: make(map[string]bool)}
}

func (g *stubGuard) Acquire(_ context.Context, jobID, applicantID string) (bool, error) {
	if g.acquireErr != nil {
		return false, g.acquireErr
	}
	key := jobID + ":" + applicantID
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, jobID, applicantID string) error {
	g.releases++
	delete(g.held, jobID+":"+applicantID)
	return nil
}

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(u *domain.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "token-for-" + u.ID, nil
}
