package domain

import "time"

// Job is a posting created by an employer.
type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Salary      float64   `json:"salary,omitempty"`
	PostedBy    string    `json:"postedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobListing is a Job with its poster resolved, as returned by browse endpoints.
// Poster is nil when the posting account no longer exists.
type JobListing struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	Salary      float64      `json:"salary,omitempty"`
	PostedBy    *UserSummary `json:"postedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Application records a worker applying to a job.
type Application struct {
	ID          string    `json:"_id"`
	JobID       string    `json:"job"`
	ApplicantID string    `json:"applicant"`
	AppliedAt   time.Time `json:"appliedAt"`
}

// JobSummary is the part of a Job embedded in application listings.
type JobSummary struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// ApplicationView is an Application with job and applicant resolved.
type ApplicationView struct {
	ID        string       `json:"_id"`
	Job       *JobSummary  `json:"job"`
	Applicant *UserSummary `json:"applicant"`
	AppliedAt time.Time    `json:"appliedAt"`
}
