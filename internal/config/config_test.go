package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/veland/wearsyncd/internal/config"
	"codeberg.org/veland/wearsyncd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T) {
	t.Helper()
	oldArgs := os.Args
	os.Args = []string{"wearsyncd"}
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoad(t *testing.T) {
	resetArgs(t)

	configContent := []byte(`
api_url = "https://api.example.com"
token = "secret-token"
window_days = 14
adapter_timeout = 5
request_timeout = 20
health_db = "/var/lib/wearsyncd/bridge.db"
journal = true
journal_db = "/var/lib/wearsyncd/journal.db"
schedule = "@every 30m"
log_level = "debug"
`)
	configPath := filepath.Join(t.TempDir(), "wearsyncd.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("WEARSYNCD_CONFIG", configPath)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "secret-token", cfg.Token)
	assert.Equal(t, 14, cfg.WindowDays)
	assert.Equal(t, 5, cfg.AdapterTimeout)
	assert.Equal(t, 20, cfg.RequestTimeout)
	assert.Equal(t, "/var/lib/wearsyncd/bridge.db", cfg.HealthDB)
	assert.True(t, cfg.Journal)
	assert.Equal(t, "/var/lib/wearsyncd/journal.db", cfg.JournalDB)
	assert.Equal(t, "@every 30m", cfg.Schedule)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("WEARSYNCD_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultWindowDays, cfg.WindowDays)
	assert.Equal(t, config.DefaultAdapterTimeout, cfg.AdapterTimeout)
	assert.Equal(t, config.DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, config.DefaultSchedule, cfg.Schedule)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Journal)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	resetArgs(t)

	configContent := []byte(`
This is not a valid TOML file
`)
	configPath := filepath.Join(t.TempDir(), "wearsyncd.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("WEARSYNCD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestInvalidWindowDays(t *testing.T) {
	resetArgs(t)

	configContent := []byte(`
window_days = 0
`)
	configPath := filepath.Join(t.TempDir(), "wearsyncd.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("WEARSYNCD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidWindow))
}

func TestInvalidLogLevel(t *testing.T) {
	resetArgs(t)

	configContent := []byte(`
log_level = "invalid"
`)
	configPath := filepath.Join(t.TempDir(), "wearsyncd.toml")
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))

	t.Setenv("WEARSYNCD_CONFIG", configPath)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}

func TestWindowDaysFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"wearsyncd", "--window-days", "3"}

	t.Setenv("WEARSYNCD_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.WindowDays, "Expected WindowDays to be set by flag")
}
