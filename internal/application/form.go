package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/pkg/utils"
	"gorm.io/gorm"
)

type FormService struct {
	Repos *repository.Repos
	deps  *deps
}

func NewFormService(repos *repository.Repos, opts ...Option) *FormService {
	return newFormService(repos, newDeps(opts))
}

func newFormService(repos *repository.Repos, d *deps) *FormService {
	return &FormService{Repos: repos, deps: d}
}

func formResourceID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CreateFormForAnimal issues a new form in state created for the animal and
// records the creation time on it. A *ReconcileError return still carries the
// committed form.
func (s *FormService) CreateFormForAnimal(ctx context.Context, actor audit.Actor, animalID uint) (form.Form, error) {
	unlock := s.deps.locks.lock(animalID)
	defer unlock()

	now := s.deps.clock.Now()
	f := form.Form{
		AnimalID:    animalID,
		FormStatus:  form.StatusCreated,
		CreatedDate: now,
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := loadAnimal(ctx, tx, animalID); err != nil {
			return err
		}
		return createForm(ctx, tx, actor, audit.ActionCreate, &f, "form created")
	})
	if err != nil {
		return form.Form{}, err
	}

	s.deps.publisher.Publish(events.FormEvent{
		Type:       events.TypeFormCreated,
		FormID:     f.ID,
		AnimalID:   f.AnimalID,
		FormStatus: string(f.FormStatus),
		At:         now,
	})

	return f, s.deps.reconcileAfterCommit(ctx, s.Repos, animalID)
}

func loadAnimal(ctx context.Context, repos *repository.Repos, id uint) (animal.Animal, error) {
	a, err := repos.Animal.GetAnimalByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return animal.Animal{}, ErrAnimalNotFound
		}
		return animal.Animal{}, storeErr("get animal", err)
	}
	return a, nil
}

// createForm is the shared unit of work for every form creation path. The
// animal must already be known to exist.
func createForm(ctx context.Context, tx *repository.Repos, actor audit.Actor, action string, f *form.Form, description string) error {
	if err := tx.Form.CreateForm(ctx, f); err != nil {
		return storeErr("create form", err)
	}
	if err := tx.Animal.UpdateAnimalFields(ctx, f.AnimalID, map[string]any{
		"last_form_created_date": f.CreatedDate,
	}); err != nil {
		return storeErr("update animal", err)
	}
	if err := utils.LogAudit(ctx, tx.Audit, actor, action, audit.ResourceForm,
		formResourceID(f.ID), nil, f, description); err != nil {
		return storeErr("write audit log", err)
	}
	return nil
}

// UpdateFormStatus applies rawStatus to the form and re-syncs its animal.
// Unknown statuses are rejected before anything is read or written.
func (s *FormService) UpdateFormStatus(ctx context.Context, actor audit.Actor, formID uint, rawStatus string) (form.Form, error) {
	next, err := form.ParseStatus(rawStatus)
	if err != nil {
		return form.Form{}, fmt.Errorf("%w: %q", ErrInvalidTransition, rawStatus)
	}

	current, err := s.GetForm(ctx, formID)
	if err != nil {
		return form.Form{}, err
	}

	unlock := s.deps.locks.lock(current.AnimalID)
	defer unlock()

	var updated form.Form
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		f, err := tx.Form.GetFormByID(ctx, formID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFormNotFound
			}
			return storeErr("get form", err)
		}
		before := f

		if err := form.ApplyStatus(&f, next, s.deps.clock.Now()); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		if err := tx.Form.SaveForm(ctx, &f); err != nil {
			return storeErr("save form", err)
		}
		if err := utils.LogAudit(ctx, tx.Audit, actor, audit.ActionStatusChange, audit.ResourceForm,
			formResourceID(f.ID), before, f, fmt.Sprintf("%s -> %s", before.FormStatus, f.FormStatus)); err != nil {
			return storeErr("write audit log", err)
		}
		updated = f
		return nil
	})
	if err != nil {
		return form.Form{}, err
	}

	s.deps.metrics.IncrementTransition(string(next))
	s.deps.publisher.Publish(events.FormEvent{
		Type:       events.TypeFormStatusChanged,
		FormID:     updated.ID,
		AnimalID:   updated.AnimalID,
		FormStatus: string(updated.FormStatus),
		At:         s.deps.clock.Now(),
	})

	return updated, s.deps.reconcileAfterCommit(ctx, s.Repos, updated.AnimalID)
}

// DeleteForm removes the form and re-syncs the animal to its next-latest form.
func (s *FormService) DeleteForm(ctx context.Context, actor audit.Actor, formID uint) error {
	current, err := s.GetForm(ctx, formID)
	if err != nil {
		return err
	}

	unlock := s.deps.locks.lock(current.AnimalID)
	defer unlock()

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		deleted, err := tx.Form.DeleteForm(ctx, formID)
		if err != nil {
			return storeErr("delete form", err)
		}
		if !deleted {
			return ErrFormNotFound
		}
		if err := utils.LogAudit(ctx, tx.Audit, actor, audit.ActionDelete, audit.ResourceForm,
			formResourceID(formID), current, nil, "form deleted"); err != nil {
			return storeErr("write audit log", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deps.publisher.Publish(events.FormEvent{
		Type:     events.TypeFormDeleted,
		FormID:   formID,
		AnimalID: current.AnimalID,
		At:       s.deps.clock.Now(),
	})

	return s.deps.reconcileAfterCommit(ctx, s.Repos, current.AnimalID)
}

func (s *FormService) GetForm(ctx context.Context, id uint) (form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return form.Form{}, ErrFormNotFound
		}
		return form.Form{}, storeErr("get form", err)
	}
	return f, nil
}

// GetFormsByIDs returns the forms that exist among ids; unknown ids are skipped.
func (s *FormService) GetFormsByIDs(ctx context.Context, ids []uint) ([]form.Form, error) {
	forms, err := s.Repos.Form.GetFormsByIDs(ctx, ids)
	return forms, storeErr("get forms", err)
}

func (s *FormService) ListFormsByAnimal(ctx context.Context, animalID uint) ([]form.Form, error) {
	if _, err := loadAnimal(ctx, s.Repos, animalID); err != nil {
		return nil, err
	}
	forms, err := s.Repos.Form.ListFormsByAnimal(ctx, animalID)
	return forms, storeErr("list forms", err)
}

func (s *FormService) ListFormsByStatus(ctx context.Context, status form.FormStatus) ([]form.Form, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransition, status)
	}
	forms, err := s.Repos.Form.ListFormsByStatus(ctx, status)
	return forms, storeErr("list forms", err)
}

// ListFormsPendingSend lists forms that were created but not yet sent.
func (s *FormService) ListFormsPendingSend(ctx context.Context) ([]form.Form, error) {
	return s.ListFormsByStatus(ctx, form.StatusCreated)
}

// ListFormsPendingControl lists filled forms awaiting review.
func (s *FormService) ListFormsPendingControl(ctx context.Context) ([]form.Form, error) {
	return s.ListFormsByStatus(ctx, form.StatusFilled)
}

// ListFormsPendingFill lists sent forms whose control window is still open.
func (s *FormService) ListFormsPendingFill(ctx context.Context) ([]form.Form, error) {
	forms, err := s.Repos.Form.ListFormsPendingFill(ctx, s.deps.clock.Now())
	return forms, storeErr("list forms", err)
}
