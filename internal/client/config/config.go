package config

import "time"

// Config holds runtime settings for the FitCoach CLI.
//
// Fields:
//   - ServerURL: base URL of the backend HTTP API.
//   - CacheDSN: sqlite DSN for the local identity cache.
//   - RequestTimeout: per-request HTTP timeout; zero means no timeout.
type Config struct {
	ServerURL      string
	CacheDSN       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000/api"
	c.CacheDSN = "fitcoach.db"
	c.RequestTimeout = 0
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
