package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-api/internal/core/ports"
)

// AdminHandler serves the /api/admin routes. Role checks happen in middleware.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/admin/users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   adminUser
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminUsers(users))
}

// ListJobs handles GET /api/admin/jobs.
//
// @Summary      List all jobs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.JobListing
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/jobs [get]
func (h *AdminHandler) ListJobs(c echo.Context) error {
	jobs, err := h.service.ListJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListApplications handles GET /api/admin/applications.
//
// @Summary      List all applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ApplicationView
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	apps, err := h.service.ListApplications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// DeleteUser handles DELETE /api/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// DeleteJob handles DELETE /api/admin/jobs/:id.
//
// @Summary      Delete any job
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c echo.Context) error {
	if err := h.service.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}
