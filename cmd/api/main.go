// @title           Animal Adoption Tracking API
// @version         1.0
// @description     Tracks adopted animals and their periodic welfare-check forms.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/adoption-tracker/internal/api/handlers"
	"github.com/linskybing/adoption-tracker/internal/api/middleware"
	"github.com/linskybing/adoption-tracker/internal/api/routes"
	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/application/scheduler"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/config/db"
	"github.com/linskybing/adoption-tracker/internal/cron"
	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/wiring"
	"github.com/linskybing/adoption-tracker/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()
	log := logger.New(config.IsProduction())

	// Initialize JWT signing key
	middleware.Init()

	if err := db.Init(); err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	hub := events.NewHub(log)
	services := application.New(
		repository.NewRepositories(db.DB),
		application.WithLogger(log),
		application.WithMetrics(m),
		application.WithPublisher(hub),
	)

	if err := services.User.EnsureAdmin(ctx); err != nil {
		log.Error("failed to ensure admin user", "error", err)
		os.Exit(1)
	}

	schedOpts, closeSweepDeps, err := wiring.SchedulerOptions(ctx, log, m)
	if err != nil {
		log.Error("failed to set up sweep dependencies", "error", err)
		os.Exit(1)
	}
	defer closeSweepDeps()
	sched := scheduler.NewScheduler(services.Generator, config.FormGenInterval, schedOpts...)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := sched.Start(ctx); err != nil {
			log.Error("scheduler stopped with error", "error", err)
		}
	}()

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays, log)

	gin.SetMode(config.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	routes.RegisterRoutes(router, handlers.New(services, sched, hub), prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	// The scheduler shares ctx; wait for the current sweep unit to finish.
	sched.Stop()
	wg.Wait()
	log.Info("shutdown complete")
}
