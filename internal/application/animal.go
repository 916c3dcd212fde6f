package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/pkg/utils"
	"gorm.io/gorm"
)

const (
	DefaultAnimalLimit = 100
	MaxAnimalLimit     = 1000
)

var ErrInvalidPeriod = errors.New("form_generation_period must not be negative")

type AnimalService struct {
	Repos *repository.Repos
	deps  *deps
}

func NewAnimalService(repos *repository.Repos, opts ...Option) *AnimalService {
	return newAnimalService(repos, newDeps(opts))
}

func newAnimalService(repos *repository.Repos, d *deps) *AnimalService {
	return &AnimalService{Repos: repos, deps: d}
}

func animalResourceID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *AnimalService) ensureUser(ctx context.Context, tx *repository.Repos, id uint) error {
	if _, err := tx.User.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storeErr("get user", err)
	}
	return nil
}

func (s *AnimalService) CreateAnimal(ctx context.Context, actor audit.Actor, input animal.CreateAnimalInput) (animal.Animal, error) {
	if input.FormGenerationPeriod < 0 {
		return animal.Animal{}, ErrInvalidPeriod
	}

	a := animal.Animal{
		Name:                 input.Name,
		ResponsibleUserID:    input.ResponsibleUserID,
		OwnerName:            input.OwnerName,
		OwnerContactNumber:   input.OwnerContactNumber,
		OwnerContactEmail:    input.OwnerContactEmail,
		FormGenerationPeriod: input.FormGenerationPeriod,
		FormStatus:           form.StatusCreated,
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := s.ensureUser(ctx, tx, input.ResponsibleUserID); err != nil {
			return err
		}
		if err := tx.Animal.CreateAnimal(ctx, &a); err != nil {
			return storeErr("create animal", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionCreate,
			audit.ResourceAnimal, animalResourceID(a.ID), nil, a, "animal created"))
	})
	if err != nil {
		return animal.Animal{}, err
	}
	return a, nil
}

func (s *AnimalService) ListAnimals(ctx context.Context, params animal.ListParams) ([]animal.Animal, error) {
	if params.Skip < 0 {
		params.Skip = 0
	}
	if params.Limit <= 0 {
		params.Limit = DefaultAnimalLimit
	}
	if params.Limit > MaxAnimalLimit {
		params.Limit = MaxAnimalLimit
	}
	animals, err := s.Repos.Animal.ListAnimals(ctx, params.Skip, params.Limit)
	if animals == nil {
		animals = []animal.Animal{}
	}
	return animals, storeErr("list animals", err)
}

func (s *AnimalService) GetAnimal(ctx context.Context, id uint) (animal.Animal, error) {
	return loadAnimal(ctx, s.Repos, id)
}

// UpdateAnimal applies the editable fields of input. Mirror fields are not
// reachable from here.
func (s *AnimalService) UpdateAnimal(ctx context.Context, actor audit.Actor, id uint, input animal.UpdateAnimalInput) (animal.Animal, error) {
	if input.FormGenerationPeriod != nil && *input.FormGenerationPeriod < 0 {
		return animal.Animal{}, ErrInvalidPeriod
	}

	unlock := s.deps.locks.lock(id)
	defer unlock()

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, err := loadAnimal(ctx, tx, id)
		if err != nil {
			return err
		}
		before := a

		if input.ResponsibleUserID != nil && *input.ResponsibleUserID != a.ResponsibleUserID {
			if err := s.ensureUser(ctx, tx, *input.ResponsibleUserID); err != nil {
				return err
			}
			a.ResponsibleUserID = *input.ResponsibleUserID
		}
		if input.Name != nil {
			a.Name = *input.Name
		}
		if input.OwnerName != nil {
			a.OwnerName = *input.OwnerName
		}
		if input.OwnerContactNumber != nil {
			a.OwnerContactNumber = *input.OwnerContactNumber
		}
		if input.OwnerContactEmail != nil {
			a.OwnerContactEmail = *input.OwnerContactEmail
		}
		if input.FormGenerationPeriod != nil {
			a.FormGenerationPeriod = *input.FormGenerationPeriod
		}

		if err := tx.Animal.SaveAnimal(ctx, &a); err != nil {
			return storeErr("save animal", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionUpdate,
			audit.ResourceAnimal, animalResourceID(id), before, a, "animal updated"))
	})
	if err != nil {
		return animal.Animal{}, err
	}
	return loadAnimal(ctx, s.Repos, id)
}

// DeleteAnimal removes the animal and every form it owns.
func (s *AnimalService) DeleteAnimal(ctx context.Context, actor audit.Actor, id uint) error {
	unlock := s.deps.locks.lock(id)
	defer unlock()

	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, err := loadAnimal(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := tx.Animal.DeleteAnimal(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAnimalNotFound
			}
			return storeErr("delete animal", err)
		}
		return storeErr("write audit log", utils.LogAudit(ctx, tx.Audit, actor, audit.ActionDelete,
			audit.ResourceAnimal, animalResourceID(id), a, nil, "animal and its forms deleted"))
	})
}
