package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "justjoinit", cfg.Site)
	assert.Equal(t, "trojmiasto", cfg.City)
	assert.Equal(t, "junior", cfg.Experience)
	assert.True(t, cfg.WithSalary)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 10, cfg.WaitTimeout)
	assert.Equal(t, 400, cfg.MaxRounds)
	assert.Equal(t, 5, cfg.MaxStaleRounds)
	assert.Equal(t, "data/raw", cfg.RawDataDir)
	assert.Equal(t, "data/staging", cfg.StagingDataDir)
	assert.Empty(t, cfg.TelegramToken)
	assert.Zero(t, cfg.TelegramChatID)
}

func TestLoadFromYAML(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `site: pracujplit
city: warszawa
experience: "17"
with_salary: false
headless: false
wait_timeout_seconds: 20
max_rounds: 50
max_stale_rounds: 2
raw_data_dir: /tmp/raw
staging_data_dir: /tmp/staging
telegram_token: filetoken
telegram_chat_id: 42
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg := Load(path)

	assert.Equal(t, "pracujplit", cfg.Site)
	assert.Equal(t, "warszawa", cfg.City)
	assert.Equal(t, "17", cfg.Experience)
	assert.False(t, cfg.WithSalary)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 20, cfg.WaitTimeout)
	assert.Equal(t, 50, cfg.MaxRounds)
	assert.Equal(t, 2, cfg.MaxStaleRounds)
	assert.Equal(t, "/tmp/raw", cfg.RawDataDir)
	assert.Equal(t, "/tmp/staging", cfg.StagingDataDir)
	assert.Equal(t, "filetoken", cfg.TelegramToken)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "fromenv")
	t.Setenv("TELEGRAM_CHAT_ID", "99")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `telegram_token: filetoken
telegram_chat_id: 42
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg := Load(path)

	assert.Equal(t, "fromenv", cfg.TelegramToken)
	assert.Equal(t, int64(99), cfg.TelegramChatID)
}
