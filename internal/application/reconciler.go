package application

import (
	"context"
	"errors"

	"github.com/linskybing/adoption-tracker/internal/repository"
	"gorm.io/gorm"
)

// Reconciler refreshes an animal's mirrored form fields from its newest form.
type Reconciler struct {
	Repos *repository.Repos
	deps  *deps
}

func NewReconciler(repos *repository.Repos, opts ...Option) *Reconciler {
	return newReconciler(repos, newDeps(opts))
}

func newReconciler(repos *repository.Repos, d *deps) *Reconciler {
	return &Reconciler{Repos: repos, deps: d}
}

// Reconcile copies the latest form's status, and its assigned date when set,
// onto the animal. Animals without forms are left untouched.
func (r *Reconciler) Reconcile(ctx context.Context, animalID uint) error {
	unlock := r.deps.locks.lock(animalID)
	defer unlock()
	return reconcileAnimal(ctx, r.Repos, animalID)
}

func reconcileAnimal(ctx context.Context, repos *repository.Repos, animalID uint) error {
	latest, err := repos.Form.GetLatestFormByAnimal(ctx, animalID)
	if err != nil {
		return storeErr("get latest form", err)
	}
	if latest == nil {
		return nil
	}

	fields := map[string]any{"form_status": latest.FormStatus}
	if latest.AssignedDate != nil {
		fields["last_form_sent_date"] = *latest.AssignedDate
	}

	err = repos.Animal.UpdateAnimalFields(ctx, animalID, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAnimalNotFound
	}
	return storeErr("update animal", err)
}

// reconcileAfterCommit wraps any failure as a warning; the caller's change is
// already durable at this point.
func (d *deps) reconcileAfterCommit(ctx context.Context, repos *repository.Repos, animalID uint) error {
	if err := reconcileAnimal(ctx, repos, animalID); err != nil {
		d.metrics.IncrementReconcileWarning()
		d.logger.Warn("reconcile after commit failed", "animal_id", animalID, "error", err)
		return &ReconcileError{AnimalID: animalID, Err: err}
	}
	return nil
}
