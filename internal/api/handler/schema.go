package handler

import (
	"time"

	"github.com/jobportal/portal-api/internal/core/domain"
)

// messageResponse is the envelope for plain confirmations and all errors.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// publicUser is the login projection of a user.
type publicUser struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type loginResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    publicUser `json:"user"`
}

type profileResponse struct {
	Message string              `json:"message"`
	User    *domain.AuthContext `json:"user"`
}

// --- Jobs ---

type postJobRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"      validate:"gte=0"`
}

type postJobResponse struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}

type applyJobRequest struct {
	JobID string `json:"jobId" validate:"required"`
}

type applyJobResponse struct {
	Message     string              `json:"message"`
	Application *domain.Application `json:"application"`
}

type applicantsResponse struct {
	JobTitle        string               `json:"jobTitle"`
	TotalApplicants int                  `json:"totalApplicants"`
	Applicants      []domain.UserSummary `json:"applicants"`
}

// adminUser is a user as listed to admins; the password hash never leaves the store layer.
type adminUser struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toPublicUser(u *domain.User) publicUser {
	return publicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func toAdminUsers(users []*domain.User) []adminUser {
	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		out = append(out, adminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
