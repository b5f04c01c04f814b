package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/aigymlabs/fitcoach/internal/flagx"
	"github.com/aigymlabs/fitcoach/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the session lifetime
// either as a string like "168h" or as integer nanoseconds.
type JsonConfig struct {
	Addr                    string         `json:"addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	AdminUsername           string         `json:"admin_username"`
	AdminPassword           string         `json:"admin_password"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags. Missing file path means no overlay; read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.Addr = jc.Addr
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.SecretKey = jc.SecretKey
	cfg.SessionValidityDuration = time.Duration(jc.SessionValidityDuration.Duration)
	cfg.AdminUsername = jc.AdminUsername
	cfg.AdminPassword = jc.AdminPassword
}
