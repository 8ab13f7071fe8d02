package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jobportal/portal-api/internal/api/handler"
	"github.com/jobportal/portal-api/internal/api/middleware"
	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

// Dependencies is everything the router wires into handlers and middleware.
type Dependencies struct {
	Auth   ports.AuthService
	Jobs   ports.JobService
	Admin  ports.AdminService
	Tokens ports.TokenVerifier

	// HealthChecks are probed by GET /health/ready.
	HealthChecks []handler.HealthCheck
	// AllowedOrigins configures CORS. Empty disables the CORS middleware.
	AllowedOrigins []string

	// Registry receives the HTTP request metrics and backs GET /metrics.
	// When nil a private registry is used.
	Registry *prometheus.Registry
	// UseDefaultRegistry serves the process-wide registry instead, which
	// also carries the metrics package counters.
	UseDefaultRegistry bool

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	if len(deps.AllowedOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: deps.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}))
	}
	registerMetrics(e, deps)

	// --- Operational routes (no auth required) ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Job Portal API is running")
	})
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.HealthChecks...)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	jobHandler := handler.NewJobHandler(deps.Jobs)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	authn := middleware.Auth(deps.Tokens)
	require := middleware.Require

	api := e.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/jobs", jobHandler.ListJobs)

	api.GET("/profile", authHandler.Profile, authn, require(domain.ActionViewProfile))

	api.POST("/post-job", jobHandler.PostJob, authn, require(domain.ActionPostJob))
	api.GET("/my-jobs", jobHandler.ListMyJobs, authn, require(domain.ActionListOwnJobs))
	api.DELETE("/my-job/:id", jobHandler.DeleteMyJob, authn, require(domain.ActionDeleteOwnJob))
	api.GET("/job-applicants/:jobId", jobHandler.Applicants, authn, require(domain.ActionViewApplicants))
	api.POST("/apply-job", jobHandler.Apply, authn, require(domain.ActionApplyJob))

	admin := api.Group("/admin", authn)
	admin.GET("/users", adminHandler.ListUsers, require(domain.ActionListUsers))
	admin.GET("/jobs", adminHandler.ListJobs, require(domain.ActionListAllJobs))
	admin.GET("/applications", adminHandler.ListApplications, require(domain.ActionListApplications))
	admin.DELETE("/users/:id", adminHandler.DeleteUser, require(domain.ActionDeleteUser))
	admin.DELETE("/jobs/:id", adminHandler.DeleteJob, require(domain.ActionDeleteJob))

	return e
}

// registerMetrics installs the echoprometheus request middleware and GET /metrics.
func registerMetrics(e *echo.Echo, deps Dependencies) {
	mwConfig := echoprometheus.MiddlewareConfig{
		Subsystem: "jobportal",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}
	handlerConfig := echoprometheus.HandlerConfig{}

	if !deps.UseDefaultRegistry {
		reg := deps.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		mwConfig.Registerer = reg
		handlerConfig.Gatherer = reg
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(mwConfig))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerConfig))
}

// requestLogger feeds echo's request log values into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
