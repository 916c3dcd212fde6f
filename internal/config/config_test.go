package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("FORM_GEN_INTERVAL_HOURS", "")
	LoadConfig()

	assert.Equal(t, "sqlite", DbDriver)
	assert.Equal(t, 12*time.Hour, FormGenInterval)
	assert.Equal(t, 30*time.Minute, AccessTokenExpire)
	assert.Equal(t, 30, AuditRetentionDays)
	assert.False(t, MinioEnabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("FORM_GEN_INTERVAL_HOURS", "3")
	t.Setenv("FORM_GEN_RUN_ON_START", "true")
	t.Setenv("MINIO_ENABLED", "1")
	LoadConfig()

	assert.Equal(t, "postgres", DbDriver)
	assert.Equal(t, 3*time.Hour, FormGenInterval)

	t.Setenv("FORM_GEN_INTERVAL_HOURS", "0.5")
	LoadConfig()
	assert.Equal(t, 30*time.Minute, FormGenInterval)
	assert.True(t, FormGenRunOnStart)
	assert.True(t, MinioEnabled)
}

func TestGetEnvInt_RejectsNonPositive(t *testing.T) {
	t.Setenv("SOME_INTERVAL", "-4")
	assert.Equal(t, 7, getEnvInt("SOME_INTERVAL", 7))

	t.Setenv("SOME_INTERVAL", "abc")
	assert.Equal(t, 7, getEnvInt("SOME_INTERVAL", 7))
}
