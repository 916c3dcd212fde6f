package application

import (
	"log/slog"

	"github.com/linskybing/adoption-tracker/internal/events"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/linskybing/adoption-tracker/pkg/clock"
	"github.com/linskybing/adoption-tracker/pkg/logger"
)

// deps are the collaborators shared by every service in one Services container.
type deps struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	clock     clock.Clock
	publisher events.Publisher
	locks     *animalLocks
}

type Option func(d *deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

func WithClock(c clock.Clock) Option {
	return func(d *deps) {
		d.clock = c
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(d *deps) {
		d.publisher = p
	}
}

func newDeps(opts []Option) *deps {
	d := &deps{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = logger.Discard()
	}
	if d.clock == nil {
		d.clock = clock.System
	}
	if d.publisher == nil {
		d.publisher = events.NopPublisher{}
	}
	if d.locks == nil {
		d.locks = newAnimalLocks()
	}
	return d
}
