// Package config handles configuration for the RMS client: defaults, JSON
// overlay, and command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the RMS client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DataDir: directory for the local SQLite database (persistent scope).
//   - Standalone: whether the client runs as an installed standalone app.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - GateTimeout: upper bound on first-paint blocking while branding loads.
type Config struct {
	ServerBaseURL       string
	DataDir             string
	Standalone          bool
	OnlineCheckInterval time.Duration
	GateTimeout         time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DataDir = "."
	c.Standalone = false
	c.OnlineCheckInterval = 3 * time.Second
	c.GateTimeout = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
