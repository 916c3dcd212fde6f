package main

import (
	"context"
	"flag"
	"os"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/config/db"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/seed"
	"github.com/linskybing/adoption-tracker/pkg/logger"
)

func main() {
	path := flag.String("file", "seed.yaml", "YAML seed file")
	flag.Parse()

	config.LoadConfig()
	log := logger.New(config.IsProduction())

	if err := db.Init(); err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	f, err := seed.Load(*path)
	if err != nil {
		log.Error("failed to load seed file", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	svc := application.New(repository.NewRepositories(db.DB), application.WithLogger(log))
	if err := svc.User.EnsureAdmin(ctx); err != nil {
		log.Error("failed to ensure admin user", "error", err)
		os.Exit(1)
	}

	sum, err := seed.Apply(ctx, svc, f, log)
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete",
		"users_created", sum.UsersCreated,
		"animals_created", sum.AnimalsCreated,
		"skipped", sum.Skipped,
	)
}
