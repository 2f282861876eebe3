package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prometheusAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/prometheus"
	telegramAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/telegram"
)

func emptyConfig() *Config {
	return &Config{
		Telegram:   &telegramAdapter.Config{},
		Prometheus: &prometheusAdapter.Config{},
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyConfigFile_FillsEmptyValues(t *testing.T) {
	cfg := emptyConfig()
	path := writeConfigFile(t, `{
		"BOT_TOKEN": "file-token",
		"PROMETHEUS_URL": "http://prom:9090",
		"ADMIN_CHAT_ID": "632306300"
	}`)

	require.NoError(t, cfg.applyConfigFile(path))

	assert.Equal(t, "file-token", cfg.Telegram.BotToken)
	assert.Equal(t, "http://prom:9090", cfg.Prometheus.URL)
	assert.Equal(t, int64(632306300), cfg.AdminChatID)
}

func TestApplyConfigFile_EnvWins(t *testing.T) {
	cfg := emptyConfig()
	cfg.Telegram.BotToken = "env-token"
	path := writeConfigFile(t, `{"BOT_TOKEN": "file-token"}`)

	require.NoError(t, cfg.applyConfigFile(path))

	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
}

func TestApplyConfigFile_NumericAdminChatID(t *testing.T) {
	cfg := emptyConfig()
	path := writeConfigFile(t, `{"ADMIN_CHAT_ID": 123}`)

	require.NoError(t, cfg.applyConfigFile(path))
	assert.Equal(t, int64(123), cfg.AdminChatID)
}

func TestApplyConfigFile_MissingFileIsFine(t *testing.T) {
	cfg := emptyConfig()
	assert.NoError(t, cfg.applyConfigFile(filepath.Join(t.TempDir(), "nope.json")))
}

func TestApplyConfigFile_MalformedFileReported(t *testing.T) {
	cfg := emptyConfig()
	path := writeConfigFile(t, `{not json`)

	assert.Error(t, cfg.applyConfigFile(path))
}

func TestValidate_RequiresBotToken(t *testing.T) {
	cfg := emptyConfig()
	assert.Error(t, cfg.Validate())

	cfg.Telegram.BotToken = "token"
	assert.NoError(t, cfg.Validate())
}
