// Package config loads runtime configuration for the FitCoach CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend HTTP API
//	-d string   sqlite DSN of the local identity cache
//	-t int      per-request timeout (seconds, 0 = no timeout)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000/api",
//	  "cache_dsn": "fitcoach.db",
//	  "request_timeout": "30s"
//	}
//
// Primary API
//
//   - type Config                     — holds ServerURL, CacheDSN and RequestTimeout
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
