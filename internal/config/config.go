package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// PollInterval is the fixed cadence of the background sampler.
	PollInterval = 3 * time.Second
	// FrameInterval is the UI tick, roughly 30 frames per second.
	FrameInterval = 33 * time.Millisecond
	// HistorySize keeps 15 minutes of samples at PollInterval.
	HistorySize = int(15 * time.Minute / PollInterval)
	// TopDisks is how many volumes the overview lists.
	TopDisks = 4

	envPrefix = "SYSDASH"
)

// Config carries runtime options for sysdash.
type Config struct {
	PollInterval  time.Duration
	FrameInterval time.Duration
	HistorySize   int
	TopDisks      int

	// Diagnostics only. The dashboard owns the terminal, so logs go to LogFile
	// or are discarded.
	LogFile string
	Debug   bool
}

func Default() Config {
	return Config{
		PollInterval:  PollInterval,
		FrameInterval: FrameInterval,
		HistorySize:   HistorySize,
		TopDisks:      TopDisks,
	}
}

// Load returns Default with diagnostic overrides from SYSDASH_LOG_FILE and
// SYSDASH_DEBUG. Sampling and frame intervals are not configurable.
func Load() Config {
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	return v
}

func fromViper(v *viper.Viper) Config {
	cfg := Default()
	cfg.LogFile = v.GetString("log_file")
	cfg.Debug = v.GetBool("debug")
	return cfg
}
