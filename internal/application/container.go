package application

import (
	"github.com/linskybing/adoption-tracker/internal/repository"
)

type Services struct {
	Audit      *AuditService
	User       *UserService
	Animal     *AnimalService
	Form       *FormService
	Reconciler *Reconciler
	Generator  *Generator
}

// New builds every service over one set of collaborators, so the per-animal
// locks are shared by all of them.
func New(repos *repository.Repos, opts ...Option) *Services {
	d := newDeps(opts)
	return &Services{
		Audit:      newAuditService(repos, d),
		User:       newUserService(repos, d),
		Animal:     newAnimalService(repos, d),
		Form:       newFormService(repos, d),
		Reconciler: newReconciler(repos, d),
		Generator:  newGenerator(repos, d),
	}
}
