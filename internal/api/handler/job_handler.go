package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-api/internal/api/metrics"
	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings and applications.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// PostJob handles POST /api/post-job.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postJobRequest  true  "Job details"
// @Success      201   {object}  postJobResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/post-job [post]
func (h *JobHandler) PostJob(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	var req postJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	job, err := h.service.PostJob(c.Request().Context(), ac, ports.PostJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
	})
	if err != nil {
		return err
	}

	metrics.JobsPostedTotal.Inc()
	return c.JSON(http.StatusCreated, postJobResponse{Message: "Job posted successfully", Job: job})
}

// ListJobs handles GET /api/jobs.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.JobListing
// @Failure      500  {object}  messageResponse
// @Router       /api/jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListMyJobs handles GET /api/my-jobs.
//
// @Summary      List the caller's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.JobListing
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/my-jobs [get]
func (h *JobHandler) ListMyJobs(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	jobs, err := h.service.ListMyJobs(c.Request().Context(), ac)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// DeleteMyJob handles DELETE /api/my-job/:id.
//
// @Summary      Delete one of the caller's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/my-job/{id} [delete]
func (h *JobHandler) DeleteMyJob(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteMyJob(c.Request().Context(), ac, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}

// Apply handles POST /api/apply-job.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyJobRequest  true  "Job to apply to"
// @Success      201   {object}  applyJobResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/apply-job [post]
func (h *JobHandler) Apply(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	var req applyJobRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	app, err := h.service.Apply(c.Request().Context(), ac, req.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, applyJobResponse{Message: "Application submitted successfully", Application: app})
}

// Applicants handles GET /api/job-applicants/:jobId.
//
// @Summary      List applicants of one of the caller's jobs
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  applicantsResponse
// @Failure      403    {object}  messageResponse
// @Failure      404    {object}  messageResponse
// @Router       /api/job-applicants/{jobId} [get]
func (h *JobHandler) Applicants(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	res, err := h.service.Applicants(c.Request().Context(), ac, c.Param("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicantsResponse{
		JobTitle:        res.JobTitle,
		TotalApplicants: res.TotalApplicants,
		Applicants:      res.Applicants,
	})
}
