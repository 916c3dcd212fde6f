package cron

import (
	"context"
	"log/slog"
	"time"
)

// AuditCleaner deletes audit rows older than a retention window.
type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

const cleanupInterval = 24 * time.Hour

// StartCleanupTask runs the audit cleanup once immediately and then every 24
// hours until ctx is cancelled. A non-positive retention disables the task.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int, logger *slog.Logger) {
	if retentionDays <= 0 {
		logger.Info("audit cleanup disabled")
		return
	}
	go runCleanup(ctx, cleaner, retentionDays, logger, time.NewTicker(cleanupInterval).C)
}

func runCleanup(ctx context.Context, cleaner AuditCleaner, retentionDays int, logger *slog.Logger, tick <-chan time.Time) {
	logger.Info("starting background audit cleanup", "retention_days", retentionDays)
	cleanupOnce(ctx, cleaner, retentionDays, logger)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			cleanupOnce(ctx, cleaner, retentionDays, logger)
		}
	}
}

func cleanupOnce(ctx context.Context, cleaner AuditCleaner, retentionDays int, logger *slog.Logger) {
	n, err := cleaner.CleanupOldLogs(ctx, retentionDays)
	if err != nil {
		logger.Error("failed to cleanup old audit logs", "error", err)
		return
	}
	logger.Info("audit log cleanup completed", "deleted", n)
}
