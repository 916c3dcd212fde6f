package application

import (
	"context"

	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
	deps  *deps
}

func NewAuditService(repos *repository.Repos, opts ...Option) *AuditService {
	return newAuditService(repos, newDeps(opts))
}

func newAuditService(repos *repository.Repos, d *deps) *AuditService {
	return &AuditService{Repos: repos, deps: d}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	logs, err := s.Repos.Audit.GetAuditLogs(ctx, params)
	return logs, storeErr("query audit logs", err)
}

// CleanupOldLogs deletes rows older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	cutoff := s.deps.clock.Now().AddDate(0, 0, -days)
	n, err := s.Repos.Audit.DeleteAuditLogsBefore(ctx, cutoff)
	return n, storeErr("delete audit logs", err)
}
