package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisan-backend/internal/llm"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "GROQ_API_KEY", "OPENROUTER_API_KEY", "GOOGLE_VISION_API_KEY",
		"VERTEX_API_KEY", "MANDI_API_KEY", "DATABASE_URL", "JWT_SECRET", "TELEGRAM_BOT_TOKEN", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, llm.ProviderGemini, cfg.Chat.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Chat.ModelName)
	assert.Equal(t, 30*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/kisan.db", cfg.Database.URL)
	assert.Equal(t, "hi", cfg.App.DefaultLanguage)
	assert.Empty(t, cfg.Chat.APIKey)
}

func TestLoadConfig_YAMLAndEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("KISAN_TEST_MANDI", "mandi-from-yaml-ref")
	t.Setenv("GROQ_API_KEY", "groq-key")
	t.Setenv("JWT_SECRET", "s3cret")

	path := writeConfig(t, `
server:
  port: "9090"
provider_timeout: 10s
chat:
  provider: groq
mandi:
  api_key: ${KISAN_TEST_MANDI}
database:
  driver: postgres
  url: postgres://kisan@localhost/kisan?sslmode=disable
storage:
  endpoint: localhost:9000
  bucket: crops
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 10*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, llm.ProviderGroq, cfg.Chat.Provider)
	assert.Equal(t, "groq-key", cfg.Chat.APIKey)
	assert.Empty(t, cfg.Chat.ModelName)
	assert.Equal(t, "mandi-from-yaml-ref", cfg.Mandi.APIKey)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Storage.Enabled())
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
