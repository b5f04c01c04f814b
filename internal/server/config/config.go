// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/aigymlabs/fitcoach/internal/common"
)

// Config holds runtime settings for the FitCoach server.
//
// Fields:
//   - Addr: bind address for the HTTP API.
//   - DatabaseDSN: sqlite DSN for the server database.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Empty means
//     a random ephemeral key is generated at startup.
//   - SessionValidityDuration: lifetime of the session cookie token.
//   - AdminUsername / AdminPassword: bootstrap credentials for the administrator account.
type Config struct {
	Addr                    string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	AdminUsername           string
	AdminPassword           string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.DatabaseDSN = "fitcoach-server.db"
	c.SessionValidityDuration = 7 * 24 * time.Hour
	c.AdminUsername = "admin"
	c.AdminPassword = "changeme"
}

// EnsureSecretKey generates a random signing key when none was configured.
// It reports whether a key was generated. A generated key is ephemeral, so
// session tokens issued before a restart stop validating after it.
func (c *Config) EnsureSecretKey() (bool, error) {
	if c.SecretKey != "" {
		return false, nil
	}
	key, err := common.MakeRandHexString(32)
	if err != nil {
		return false, err
	}
	c.SecretKey = key
	return true, nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
