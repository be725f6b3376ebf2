// Package config assembles runtime settings for ScholarTrack.
// Values are layered: defaults, then a JSON file (if -c/-config is
// given), then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings.
//
// AuthLatency and ApplyLatency emulate the request round-trip the
// original backendless app faked with timers; tests set them to zero.
// CompetitionLow/CompetitionHigh are the applicant-count buckets for
// the competition meter (below low = low, below high = medium,
// otherwise high).
type Config struct {
	DatabasePath  string
	SessionSecret string

	AuthLatency  time.Duration
	ApplyLatency time.Duration

	CompetitionLow  int
	CompetitionHigh int

	// Open listings closing within this many days get a
	// deadline-approaching notification at startup.
	DeadlineWindowDays int

	// First-run bootstrap admin, seeded only into an empty registry.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
	BootstrapAdminName     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "scholartrack.db"
	c.SessionSecret = "scholartrack-dev-secret"
	c.AuthLatency = time.Second
	c.ApplyLatency = 1500 * time.Millisecond
	c.CompetitionLow = 30
	c.CompetitionHigh = 60
	c.DeadlineWindowDays = 7
	c.BootstrapAdminEmail = "admin@scholartrack.com"
	c.BootstrapAdminPassword = "admin123"
	c.BootstrapAdminName = "System Admin"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
