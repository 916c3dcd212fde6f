package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/application/scheduler"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/config/db"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/wiring"
	"github.com/linskybing/adoption-tracker/pkg/logger"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep, print the result and exit")
	flag.Parse()

	// Load configuration from environment variables and .env file
	config.LoadConfig()
	log := logger.New(config.IsProduction())

	if err := db.Init(); err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	services := application.New(
		repository.NewRepositories(db.DB),
		application.WithLogger(log),
		application.WithMetrics(m),
	)

	opts, closeSweepDeps, err := wiring.SchedulerOptions(ctx, log, m)
	if err != nil {
		log.Error("failed to set up sweep dependencies", "error", err)
		os.Exit(1)
	}
	defer closeSweepDeps()
	sched := scheduler.NewScheduler(services.Generator, config.FormGenInterval, opts...)

	if *once {
		res, err := sched.TriggerNow(ctx)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
		if err != nil {
			log.Error("sweep failed", "error", err)
			closeSweepDeps()
			os.Exit(1)
		}
		return
	}

	log.Info("starting form scheduler", "interval", config.FormGenInterval)
	if err := sched.Start(ctx); err != nil {
		log.Error("scheduler error", "error", err)
		closeSweepDeps()
		os.Exit(1)
	}
}
