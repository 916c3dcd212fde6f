package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repos struct {
	User   UserRepo
	Animal AnimalRepo
	Form   FormRepo
	Audit  AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:   NewUserRepo(db),
		Animal: NewAnimalRepo(db),
		Form:   NewFormRepo(db),
		Audit:  NewAuditRepo(db),
		db:     db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:   r.User.WithTx(tx),
		Animal: r.Animal.WithTx(tx),
		Form:   r.Form.WithTx(tx),
		Audit:  r.Audit.WithTx(tx),
		db:     tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos assembled without a
// database handle (mocks) run fn directly.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
