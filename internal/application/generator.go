package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/internal/repository"
)

const (
	SweepOutcomeOK      = "ok"
	SweepOutcomePartial = "partial"
	SweepOutcomeFailed  = "failed"
)

type SweepFailure struct {
	AnimalID uint   `json:"animal_id"`
	Error    string `json:"error"`
	Err      error  `json:"-"`
}

// SweepResult describes one run of the periodic generator.
type SweepResult struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Created    []form.Form    `json:"created"`
	Failures   []SweepFailure `json:"failures"`
}

func (r SweepResult) Outcome() string {
	switch {
	case len(r.Failures) == 0:
		return SweepOutcomeOK
	case len(r.Created) == 0:
		return SweepOutcomeFailed
	default:
		return SweepOutcomePartial
	}
}

// Generator creates forms for every animal whose generation period has elapsed.
type Generator struct {
	Repos *repository.Repos
	deps  *deps
}

func NewGenerator(repos *repository.Repos, opts ...Option) *Generator {
	return newGenerator(repos, newDeps(opts))
}

func newGenerator(repos *repository.Repos, d *deps) *Generator {
	return &Generator{Repos: repos, deps: d}
}

func (g *Generator) Run(ctx context.Context) (SweepResult, error) {
	return g.RunAt(ctx, g.deps.clock.Now())
}

// RunAt sweeps all animals with generation enabled at the instant now. Each
// animal is its own unit of work: a failure is recorded in the result and
// the sweep moves on. An error is returned only when animals cannot be
// listed, or when ctx is cancelled between animals; the partial result is
// still returned in that case. A unit that has started always completes.
func (g *Generator) RunAt(ctx context.Context, now time.Time) (SweepResult, error) {
	res := SweepResult{
		RunID:     uuid.NewString(),
		StartedAt: now,
		Created:   []form.Form{},
		Failures:  []SweepFailure{},
	}
	log := g.deps.logger.With("run_id", res.RunID)

	animals, err := g.Repos.Animal.ListAnimalsForGeneration(ctx)
	if err != nil {
		res.FinishedAt = g.deps.clock.Now()
		return res, storeErr("list animals", err)
	}

	for _, a := range animals {
		if err := ctx.Err(); err != nil {
			res.FinishedAt = g.deps.clock.Now()
			log.Info("form generation interrupted", "created", len(res.Created), "failed", len(res.Failures))
			return res, err
		}
		if !a.IsFormDue(now) {
			continue
		}

		f, err := g.generateFor(context.WithoutCancel(ctx), a.ID, now)
		if f != nil {
			res.Created = append(res.Created, *f)
		}
		if err != nil {
			log.Warn("form generation failed for animal", "animal_id", a.ID, "error", err)
			res.Failures = append(res.Failures, SweepFailure{AnimalID: a.ID, Error: err.Error(), Err: err})
		}
	}

	res.FinishedAt = g.deps.clock.Now()
	log.Info("form generation finished",
		"animals", len(animals),
		"created", len(res.Created),
		"failed", len(res.Failures),
	)
	return res, nil
}

// generateFor re-checks the due rule under the animal's lock so two
// overlapping sweeps cannot both create a form from the same stale read.
// A non-nil form with a *ReconcileError means the form was committed.
func (g *Generator) generateFor(ctx context.Context, animalID uint, now time.Time) (*form.Form, error) {
	unlock := g.deps.locks.lock(animalID)
	defer unlock()

	var created *form.Form
	err := g.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		a, err := loadAnimal(ctx, tx, animalID)
		if err != nil {
			return err
		}
		if !a.IsFormDue(now) {
			return nil
		}

		f := form.Form{
			AnimalID:    animalID,
			FormStatus:  form.StatusCreated,
			CreatedDate: now,
		}
		if err := createForm(ctx, tx, audit.SystemActor, audit.ActionGenerate, &f, describeGeneration(a)); err != nil {
			return err
		}
		created = &f
		return nil
	})
	if err != nil || created == nil {
		return nil, err
	}

	g.deps.publisher.Publish(events.FormEvent{
		Type:       events.TypeFormCreated,
		FormID:     created.ID,
		AnimalID:   animalID,
		FormStatus: string(created.FormStatus),
		At:         now,
	})

	return created, g.deps.reconcileAfterCommit(ctx, g.Repos, animalID)
}

func describeGeneration(a animal.Animal) string {
	if a.LastFormSentDate == nil {
		return "periodic form generated: no form sent yet"
	}
	next, _ := a.NextFormDue()
	return "periodic form generated: due since " + next.Format(time.DateOnly)
}
