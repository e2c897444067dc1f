package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOCK_TTL", "")
	t.Setenv("STATUS_MAX_RANGE_DAYS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, 5*time.Second, cfg.LockTTL)
	assert.Equal(t, 2*time.Second, cfg.LockWait)
	assert.Equal(t, 31, cfg.StatusMaxRangeDays)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOCK_TTL", "10s")
	t.Setenv("LOCK_WAIT", "not-a-duration")
	t.Setenv("LOG_PRETTY", "true")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, 2*time.Second, cfg.LockWait)
	assert.True(t, cfg.LogPretty)
}
