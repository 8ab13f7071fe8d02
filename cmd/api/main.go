// @title                       Job Portal API
// @version                     1.0
// @description                 Job portal backend: registration, login, job postings, applications and administration.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jobportal/portal-api/docs"
	"github.com/jobportal/portal-api/internal/api"
	"github.com/jobportal/portal-api/internal/api/handler"
	"github.com/jobportal/portal-api/internal/core/service"
	mongostore "github.com/jobportal/portal-api/internal/infrastructure/db/mongo"
	redisstore "github.com/jobportal/portal-api/internal/infrastructure/db/redis"
	"github.com/jobportal/portal-api/internal/pkg/config"
	"github.com/jobportal/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{Level: "error"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "portal-api",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file loaded, using process environment")
	}

	// --- Stores ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "portal-api",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure MongoDB indexes")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	// --- Core ---
	users := mongostore.NewUserRepository(db)
	jobs := mongostore.NewJobRepository(db)
	apps := mongostore.NewApplicationRepository(db)

	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	guard := redisstore.NewApplyGuard(rdb, cfg.Redis.ApplyGuardTTL)

	router := api.NewRouter(api.Dependencies{
		Auth:   service.NewAuthService(users, hasher, tokens, log),
		Jobs:   service.NewJobService(jobs, apps, guard, log),
		Admin:  service.NewAdminService(users, jobs, apps, log),
		Tokens: tokens,
		HealthChecks: []handler.HealthCheck{
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongostore.Ping(ctx, db) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb, 3*time.Second) }},
		},
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		UseDefaultRegistry: true,
		Log:                log,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
