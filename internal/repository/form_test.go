package repository

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/linskybing/adoption-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFormRepo(t *testing.T) (*Repos, uint) {
	conn := testutils.NewSqliteDB(t)
	owner := testutils.SeedUser(t, conn, "owner", user.RoleRegular)
	a := testutils.SeedAnimal(t, conn, owner.ID, 0)
	return NewRepositories(conn), a.ID
}

func newForm(animalID uint, status form.FormStatus) *form.Form {
	return &form.Form{
		AnimalID:    animalID,
		FormStatus:  status,
		CreatedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetLatestFormByAnimal(t *testing.T) {
	repos, animalID := setupFormRepo(t)
	ctx := context.Background()

	latest, err := repos.Form.GetLatestFormByAnimal(ctx, animalID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	first := newForm(animalID, form.StatusFilled)
	second := newForm(animalID, form.StatusCreated)
	require.NoError(t, repos.Form.CreateForm(ctx, first))
	require.NoError(t, repos.Form.CreateForm(ctx, second))

	latest, err = repos.Form.GetLatestFormByAnimal(ctx, animalID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, form.StatusCreated, latest.FormStatus)
}

func TestDeleteForm_ReportsMissing(t *testing.T) {
	repos, animalID := setupFormRepo(t)
	ctx := context.Background()

	f := newForm(animalID, form.StatusCreated)
	require.NoError(t, repos.Form.CreateForm(ctx, f))

	deleted, err := repos.Form.DeleteForm(ctx, f.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repos.Form.DeleteForm(ctx, f.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetFormsByIDs_SkipsUnknown(t *testing.T) {
	repos, animalID := setupFormRepo(t)
	ctx := context.Background()

	a := newForm(animalID, form.StatusCreated)
	b := newForm(animalID, form.StatusSent)
	require.NoError(t, repos.Form.CreateForm(ctx, a))
	require.NoError(t, repos.Form.CreateForm(ctx, b))

	forms, err := repos.Form.GetFormsByIDs(ctx, []uint{b.ID, 999, a.ID})
	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, a.ID, forms[0].ID)
	assert.Equal(t, b.ID, forms[1].ID)

	forms, err = repos.Form.GetFormsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestListFormsPendingFill(t *testing.T) {
	repos, animalID := setupFormRepo(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	open := newForm(animalID, form.StatusSent)
	open.ControlDueDate = &future
	overdue := newForm(animalID, form.StatusSent)
	overdue.ControlDueDate = &past
	filled := newForm(animalID, form.StatusFilled)
	filled.ControlDueDate = &future

	for _, f := range []*form.Form{open, overdue, filled} {
		require.NoError(t, repos.Form.CreateForm(ctx, f))
	}

	forms, err := repos.Form.ListFormsPendingFill(ctx, now)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, open.ID, forms[0].ID)

	sent, err := repos.Form.ListFormsByStatus(ctx, form.StatusSent)
	require.NoError(t, err)
	assert.Len(t, sent, 2)
}
