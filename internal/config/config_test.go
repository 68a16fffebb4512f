package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SHEET_URL", "GOOGLE_SHEETS_ID", "SHEET_GID", "PORT", "PAGE_TITLE",
		"CACHE_DURATION_MINUTES", "REFRESH_INTERVAL_MINUTES", "FETCH_TIMEOUT_SECONDS",
		"DISCORD_TOKEN", "COMMAND_PREFIX", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0", cfg.SheetGID)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheDuration)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DiscordEnabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_SHEETS_ID", "sheet")
	t.Setenv("SHEET_GID", "474045884")
	t.Setenv("CACHE_DURATION_MINUTES", "10")
	t.Setenv("REFRESH_INTERVAL_MINUTES", "3")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "474045884", cfg.SheetGID)
	assert.Equal(t, 10*time.Minute, cfg.CacheDuration)
	assert.Equal(t, 3*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.DiscordEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "SHEET_URL or GOOGLE_SHEETS_ID is required")
	assert.Contains(t, msg, "PORT must not be empty")
	assert.Contains(t, msg, "CACHE_DURATION_MINUTES must be greater than 0")
}
