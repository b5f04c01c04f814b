package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:5000/api", c.ServerURL)
	assert.Equal(t, "fitcoach.db", c.CacheDSN)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:5000/api", cfg.ServerURL)
	assert.Equal(t, "fitcoach.db", cfg.CacheDSN)
}
