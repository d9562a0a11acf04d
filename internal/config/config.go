package config

import "time"

// RuntimeConfig is the validated, default-resolved form of Config that
// cmd/plannerd hands to planner.New and to its own tick loop.
type RuntimeConfig struct {
	All Config

	TickInterval time.Duration
}

// NewRuntimeConfig resolves defaults left zero in the YAML file: a
// zero TickInterval falls back to the model's native 20 Hz rate.
func NewRuntimeConfig(c Config) *RuntimeConfig {
	rc := &RuntimeConfig{All: c}

	interval := c.TickInterval
	if interval <= 0 {
		interval = 0.05 // DT_MDL
	}
	rc.TickInterval = time.Duration(interval * float64(time.Second))

	return rc
}
