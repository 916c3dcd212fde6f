package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/linskybing/adoption-tracker/internal/repository"
	"github.com/linskybing/adoption-tracker/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{now: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	svc   *Services
	repos *repository.Repos
	db    *gorm.DB
	clock *testClock
	owner user.User
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutils.NewSqliteDB(t)
	repos := repository.NewRepositories(conn)
	clk := newTestClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	return &fixture{
		svc:   New(repos, WithClock(clk)),
		repos: repos,
		db:    conn,
		clock: clk,
		owner: testutils.SeedUser(t, conn, "operator1", user.RoleRegular),
	}
}

func (f *fixture) animal(t *testing.T, period int) animal.Animal {
	t.Helper()
	return testutils.SeedAnimal(t, f.db, f.owner.ID, period)
}

func (f *fixture) reload(t *testing.T, id uint) animal.Animal {
	t.Helper()
	a, err := f.svc.Animal.GetAnimal(context.Background(), id)
	require.NoError(t, err)
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}
