package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "k")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SCAN_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://formsubmit.co/ajax", cfg.FormRelayURL)
	assert.Equal(t, 4, cfg.ScanConcurrency)
}

func TestLoadMissingAPIKeyIsWarningNotFatal(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, err := Load()
	assert.Error(t, err)
	// The rest of the config still comes back usable.
	assert.NotEmpty(t, cfg.ListenAddr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "k")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("SCAN_CONCURRENCY", "8")
	t.Setenv("RELAY_EMAIL", "ops@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 8, cfg.ScanConcurrency)
	assert.Equal(t, "ops@example.com", cfg.RelayEmail)
}
