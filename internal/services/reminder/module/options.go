package module

import (
	"time"

	"nadbot/internal/platform/config"
)

// Options controls reminder loop cadence
type Options struct {
	Interval time.Duration // time between sweeps
	Horizon  time.Duration // how far ahead a sweep scans
}

// FromConfig reads REMINDER_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("REMINDER_")
	return Options{
		Interval: rc.MayDuration("INTERVAL", time.Hour),
		Horizon:  rc.MayDuration("HORIZON", 8*24*time.Hour),
	}
}
