// Package wiring assembles the optional sweep collaborators chosen by configuration.
package wiring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linskybing/adoption-tracker/internal/application/scheduler"
	"github.com/linskybing/adoption-tracker/internal/archive"
	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// SchedulerOptions returns the scheduler options for the current config. The
// returned close func releases any client it opened.
func SchedulerOptions(ctx context.Context, logger *slog.Logger, m *metrics.Metrics) ([]scheduler.Option, func(), error) {
	opts := []scheduler.Option{
		scheduler.WithLogger(logger),
		scheduler.WithMetrics(m),
		scheduler.WithRunOnStart(config.FormGenRunOnStart),
	}
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, closeAll, fmt.Errorf("connect redis %s: %w", config.RedisAddr, err)
		}
		closers = append(closers, func() { _ = client.Close() })
		opts = append(opts, scheduler.WithLocker(scheduler.NewRedisLocker(client)))
		logger.Info("sweep lock enabled", "redis", config.RedisAddr)
	}

	if config.MinioEnabled {
		client, err := archive.NewMinioClient(ctx)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opts = append(opts, scheduler.WithReportSink(archive.NewMinioArchiver(client, config.MinioBucket)))
		logger.Info("sweep reports archived", "endpoint", config.MinioEndpoint, "bucket", config.MinioBucket)
	}

	return opts, closeAll, nil
}
