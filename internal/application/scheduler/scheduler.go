package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/linskybing/adoption-tracker/internal/application"
	"github.com/linskybing/adoption-tracker/internal/metrics"
	"github.com/linskybing/adoption-tracker/pkg/logger"
	"golang.org/x/sync/singleflight"
)

const (
	lockKey        = "adoption-tracker:form-sweep"
	defaultLockTTL = 30 * time.Minute
)

var (
	ErrAlreadyRunning = errors.New("scheduler already running")
	ErrSweepSkipped   = errors.New("sweep skipped: another replica holds the sweep lock")
)

// Sweeper runs one periodic form generation pass.
type Sweeper interface {
	Run(ctx context.Context) (application.SweepResult, error)
}

// Locker makes sweeps exclusive across processes. ok is false when the
// lock is held elsewhere.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, ok bool, err error)
}

// ReportSink receives the result of every completed sweep.
type ReportSink interface {
	Store(ctx context.Context, res application.SweepResult) error
}

// Scheduler runs the sweeper on a fixed interval. Sweeps never overlap:
// ticks that arrive mid-sweep are dropped and on-demand triggers share the
// sweep in flight.
type Scheduler struct {
	sweeper    Sweeper
	interval   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	locker     Locker
	sink       ReportSink
	lockTTL    time.Duration
	runOnStart bool

	group    singleflight.Group
	inFlight atomic.Bool
	running  atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(s *Scheduler)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

func WithLocker(l Locker) Option {
	return func(s *Scheduler) {
		s.locker = l
	}
}

func WithReportSink(sink ReportSink) Option {
	return func(s *Scheduler) {
		s.sink = sink
	}
}

func WithLockTTL(ttl time.Duration) Option {
	return func(s *Scheduler) {
		s.lockTTL = ttl
	}
}

// WithRunOnStart sweeps once as soon as Start is called.
func WithRunOnStart(enabled bool) Option {
	return func(s *Scheduler) {
		s.runOnStart = enabled
	}
}

func NewScheduler(sweeper Sweeper, interval time.Duration, opts ...Option) *Scheduler {
	s := &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		lockTTL:  defaultLockTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s
}

// Start blocks until ctx is cancelled or Stop is called. A sweep in progress
// at that point finishes its current animal before Start returns.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return errors.New("scheduler interval must be positive")
	}

	s.mu.Lock()
	if s.running.Load() {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done
	s.running.Store(true)
	s.mu.Unlock()

	defer func() {
		cancel()
		s.running.Store(false)
		close(done)
	}()

	s.logger.Info("form scheduler started", "interval", s.interval)

	if s.runOnStart {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("form scheduler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Stop cancels the loop and waits for Start to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// TriggerNow runs a sweep immediately, or waits for and returns the one
// already in flight.
func (s *Scheduler) TriggerNow(ctx context.Context) (application.SweepResult, error) {
	v, err, shared := s.group.Do(lockKey, func() (any, error) {
		s.inFlight.Store(true)
		defer s.inFlight.Store(false)
		return s.sweep(ctx)
	})
	if shared {
		s.logger.Debug("joined in-flight sweep")
	}
	res, _ := v.(application.SweepResult)
	return res, err
}

func (s *Scheduler) IsRunning() bool {
	return s.running.Load()
}

func (s *Scheduler) SweepInFlight() bool {
	return s.inFlight.Load()
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.inFlight.Load() {
		s.logger.Info("previous sweep still running, skipping tick")
		s.metrics.IncrementSweepSkipped()
		return
	}
	if _, err := s.TriggerNow(ctx); err != nil && !errors.Is(err, ErrSweepSkipped) {
		s.logger.Error("scheduled sweep failed", "error", err)
	}
}

func (s *Scheduler) sweep(ctx context.Context) (application.SweepResult, error) {
	if s.locker != nil {
		unlock, ok, err := s.locker.TryLock(ctx, lockKey, s.lockTTL)
		if err != nil {
			s.metrics.ObserveSweep(application.SweepOutcomeFailed, 0, 0, 0)
			return application.SweepResult{}, err
		}
		if !ok {
			s.logger.Info("sweep lock held elsewhere, skipping")
			s.metrics.IncrementSweepSkipped()
			return application.SweepResult{}, ErrSweepSkipped
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.logger.Warn("release sweep lock", "error", err)
			}
		}()
	}

	start := time.Now()
	res, err := s.sweeper.Run(ctx)
	elapsed := time.Since(start)

	outcome := res.Outcome()
	if err != nil {
		outcome = application.SweepOutcomeFailed
	}
	s.metrics.ObserveSweep(outcome, elapsed, len(res.Created), len(res.Failures))
	s.logger.Info("sweep completed",
		"run_id", res.RunID,
		"outcome", outcome,
		"created", len(res.Created),
		"failed", len(res.Failures),
		"duration", elapsed,
	)

	if s.sink != nil && res.RunID != "" {
		if sinkErr := s.sink.Store(context.WithoutCancel(ctx), res); sinkErr != nil {
			s.logger.Warn("store sweep report", "run_id", res.RunID, "error", sinkErr)
		}
	}
	return res, err
}
