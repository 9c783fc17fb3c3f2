package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/handlers"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/config"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/db"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/logger"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/metrics"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/middleware"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/repository/postgres"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	tm := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	authSvc := services.NewAuthService(repos.Users, tm)
	userSvc := services.NewUserService(repos.Users, repos.Trips)
	tripSvc := services.NewTripService(repos.Trips)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:    cfg,
		Log:    log,
		AuthMW: middleware.NewAuthMiddleware(tm, repos.Users),
		AuthH:  handlers.NewAuthHandler(authSvc),
		UserH:  handlers.NewUserHandler(userSvc),
		TripH:  handlers.NewTripHandler(tripSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
