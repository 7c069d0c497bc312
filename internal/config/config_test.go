package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 33*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 300, cfg.HistorySize)
	assert.Equal(t, 4, cfg.TopDisks)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SYSDASH_LOG_FILE", "/tmp/sysdash.log")
	t.Setenv("SYSDASH_DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "/tmp/sysdash.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_IntervalNotConfigurable(t *testing.T) {
	t.Setenv("SYSDASH_POLL_INTERVAL", "1s")
	t.Setenv("SYSDASH_INTERVAL", "1s")

	cfg := Load()

	assert.Equal(t, PollInterval, cfg.PollInterval)
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set("debug", true)

	cfg := fromViper(v)

	assert.True(t, cfg.Debug)
	assert.Equal(t, HistorySize, cfg.HistorySize)
}
