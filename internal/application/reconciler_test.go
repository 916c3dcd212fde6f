package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReconcile_CopiesLatestStatusAndAssignedDate(t *testing.T) {
	fx := setupFixture(t)
	ctx := context.Background()
	a := fx.animal(t, 0)

	assigned := date(2024, time.March, 3)
	latest := &form.Form{AnimalID: a.ID, FormStatus: form.StatusFilled, CreatedDate: assigned, AssignedDate: &assigned}
	require.NoError(t, fx.repos.Form.CreateForm(ctx, &form.Form{AnimalID: a.ID, FormStatus: form.StatusControlled, CreatedDate: assigned}))
	require.NoError(t, fx.repos.Form.CreateForm(ctx, latest))

	require.NoError(t, fx.svc.Reconciler.Reconcile(ctx, a.ID))

	got := fx.reload(t, a.ID)
	assert.Equal(t, form.StatusFilled, got.FormStatus)
	require.NotNil(t, got.LastFormSentDate)
	assert.True(t, assigned.Equal(*got.LastFormSentDate))
}

func TestReconcile_KeepsAnchorWhenLatestUnsent(t *testing.T) {
	fx := setupFixture(t)
	ctx := context.Background()
	a := fx.animal(t, 0)

	anchor := date(2023, time.December, 1)
	require.NoError(t, fx.repos.Animal.UpdateAnimalFields(ctx, a.ID, map[string]any{"last_form_sent_date": anchor}))
	require.NoError(t, fx.repos.Form.CreateForm(ctx, &form.Form{AnimalID: a.ID, FormStatus: form.StatusCreated, CreatedDate: anchor}))

	require.NoError(t, fx.svc.Reconciler.Reconcile(ctx, a.ID))

	got := fx.reload(t, a.ID)
	assert.Equal(t, form.StatusCreated, got.FormStatus)
	assert.True(t, anchor.Equal(*got.LastFormSentDate))
}

func TestReconcile_NoFormsIsNoop(t *testing.T) {
	fx := setupFixture(t)
	a := fx.animal(t, 0)

	require.NoError(t, fx.svc.Reconciler.Reconcile(context.Background(), a.ID))
	assert.Equal(t, form.StatusCreated, fx.reload(t, a.ID).FormStatus)
}

func TestReconcile_UnknownAnimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAnimal := mock.NewMockAnimalRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	r := NewReconciler(&repository.Repos{Animal: mockAnimal, Form: mockForm})

	mockForm.EXPECT().GetLatestFormByAnimal(gomock.Any(), uint(9)).Return(&form.Form{ID: 1, AnimalID: 9, FormStatus: form.StatusSent}, nil)
	mockAnimal.EXPECT().UpdateAnimalFields(gomock.Any(), uint(9), gomock.Any()).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, r.Reconcile(context.Background(), 9), ErrAnimalNotFound)
}

// --------------------- Warning after commit (mocks) ---------------------
func TestUpdateFormStatus_ReconcileFailureIsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAnimal := mock.NewMockAnimalRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{Animal: mockAnimal, Form: mockForm, Audit: mockAudit}
	svc := NewFormService(repos, WithClock(newTestClock(date(2024, time.June, 1))))

	stored := form.Form{ID: 5, AnimalID: 2, FormStatus: form.StatusCreated, CreatedDate: date(2024, time.May, 1)}
	mockForm.EXPECT().GetFormByID(gomock.Any(), uint(5)).Return(stored, nil).Times(2)
	mockForm.EXPECT().SaveForm(gomock.Any(), gomock.Any()).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(nil)
	mockForm.EXPECT().GetLatestFormByAnimal(gomock.Any(), uint(2)).Return(&form.Form{ID: 5, AnimalID: 2, FormStatus: form.StatusSent}, nil)
	mockAnimal.EXPECT().UpdateAnimalFields(gomock.Any(), uint(2), gomock.Any()).Return(errors.New("deadlock"))

	updated, err := svc.UpdateFormStatus(context.Background(), testActor, 5, "sent")
	require.Error(t, err)
	assert.True(t, IsReconcileWarning(err))
	assert.False(t, errors.Is(err, ErrFormNotFound))
	assert.Equal(t, form.StatusSent, updated.FormStatus)
	assert.NotNil(t, updated.AssignedDate)
}

func TestUpdateFormStatus_StoreFailureIsNotWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{Form: mockForm}
	svc := NewFormService(repos)

	stored := form.Form{ID: 5, AnimalID: 2, FormStatus: form.StatusCreated}
	mockForm.EXPECT().GetFormByID(gomock.Any(), uint(5)).Return(stored, nil)
	mockForm.EXPECT().GetFormByID(gomock.Any(), uint(5)).Return(form.Form{}, gorm.ErrInvalidDB)

	_, err := svc.UpdateFormStatus(context.Background(), testActor, 5, "filled")
	require.Error(t, err)
	assert.True(t, IsStoreFailure(err))
	assert.False(t, IsReconcileWarning(err))
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}
