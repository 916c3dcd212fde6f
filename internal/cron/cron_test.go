package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCleaner struct {
	mu    sync.Mutex
	calls []int
	err   error
}

func (c *countingCleaner) CleanupOldLogs(_ context.Context, days int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, days)
	return 3, c.err
}

func (c *countingCleaner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunCleanup_ImmediateThenOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cleaner := &countingCleaner{}
	tick := make(chan time.Time)
	done := make(chan struct{})

	go func() {
		runCleanup(ctx, cleaner, 30, quiet, tick)
		close(done)
	}()

	assert.Eventually(t, func() bool { return cleaner.count() == 1 }, time.Second, 5*time.Millisecond)
	tick <- time.Now()
	assert.Eventually(t, func() bool { return cleaner.count() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
	assert.Equal(t, []int{30, 30}, cleaner.calls)
}

func TestRunCleanup_ErrorKeepsLooping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleaner := &countingCleaner{err: errors.New("db down")}
	tick := make(chan time.Time)

	go runCleanup(ctx, cleaner, 7, quiet, tick)

	assert.Eventually(t, func() bool { return cleaner.count() == 1 }, time.Second, 5*time.Millisecond)
	tick <- time.Now()
	assert.Eventually(t, func() bool { return cleaner.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestStartCleanupTask_Disabled(t *testing.T) {
	cleaner := &countingCleaner{}
	StartCleanupTask(context.Background(), cleaner, 0, quiet)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, cleaner.count())
}
