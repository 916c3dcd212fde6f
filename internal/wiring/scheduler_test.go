package wiring

import (
	"context"
	"testing"

	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerOptions_Defaults(t *testing.T) {
	config.RedisAddr = ""
	config.MinioEnabled = false
	config.FormGenRunOnStart = true

	opts, closeFn, err := SchedulerOptions(context.Background(), logger.Discard(), nil)
	require.NoError(t, err)
	defer closeFn()
	assert.Len(t, opts, 3)
}

func TestSchedulerOptions_UnreachableRedis(t *testing.T) {
	config.RedisAddr = "127.0.0.1:1"
	config.MinioEnabled = false
	t.Cleanup(func() { config.RedisAddr = "" })

	_, closeFn, err := SchedulerOptions(context.Background(), logger.Discard(), nil)
	closeFn()
	assert.ErrorContains(t, err, "connect redis")
}
