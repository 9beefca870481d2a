// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve mode, e.g. ":9070".
	Addr string `koanf:"addr"`

	// GroupSize sets skaters per warm-up group.
	GroupSize int `koanf:"group_size"`

	// IntervalSeconds sets the per-skater slot length.
	IntervalSeconds int `koanf:"interval_seconds"`

	// WarmupSeconds sets the warm-up length per group.
	WarmupSeconds int `koanf:"warmup_seconds"`

	// PauseAfter inserts a pause after this global start number (0 = none).
	PauseAfter int `koanf:"pause_after"`

	// PauseSeconds sets the pause length (0 = none).
	PauseSeconds int `koanf:"pause_seconds"`

	// PauseLabel is the timeline label for the inserted pause.
	PauseLabel string `koanf:"pause_label"`

	// StartTime is the event start as a HH:MM:SS clock string.
	StartTime string `koanf:"start_time"`

	// ProbeWorkers bounds concurrent music-duration probes.
	ProbeWorkers int `koanf:"probe_workers"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9070",
		GroupSize:       8,
		IntervalSeconds: 220,
		WarmupSeconds:   240,
		PauseAfter:      0,
		PauseSeconds:    0,
		PauseLabel:      "Pause",
		StartTime:       "18:00:00",
		ProbeWorkers:    4,
	}
}
