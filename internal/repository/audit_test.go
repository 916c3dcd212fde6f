package repository

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_QueryAndCleanup(t *testing.T) {
	repos := NewRepositories(testutils.NewSqliteDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	old := &audit.AuditLog{UserID: 1, Action: audit.ActionCreate, ResourceType: audit.ResourceAnimal, CreatedAt: now.AddDate(0, 0, -40)}
	recent := &audit.AuditLog{UserID: 2, Action: audit.ActionStatusChange, ResourceType: audit.ResourceForm, CreatedAt: now}
	require.NoError(t, repos.Audit.CreateAuditLog(ctx, old))
	require.NoError(t, repos.Audit.CreateAuditLog(ctx, recent))

	resource := audit.ResourceForm
	logs, err := repos.Audit.GetAuditLogs(ctx, AuditQueryParams{ResourceType: &resource})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, recent.ID, logs[0].ID)

	removed, err := repos.Audit.DeleteAuditLogsBefore(ctx, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	logs, err = repos.Audit.GetAuditLogs(ctx, AuditQueryParams{})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
