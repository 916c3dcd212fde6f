package utils

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/repository"
)

// LogAudit writes one audit row through repo, which may be bound to an open
// transaction. Payloads that cannot be marshalled are stored empty.
var LogAudit = func(
	ctx context.Context,
	repo repository.AuditRepo,
	actor audit.Actor,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			slog.Warn("audit marshal old data", "error", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			slog.Warn("audit marshal new data", "error", err)
		}
	}

	auditLog := &audit.AuditLog{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    actor.IPAddress,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}

	return repo.CreateAuditLog(ctx, auditLog)
}
