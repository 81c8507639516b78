package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talentx")
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_PORT", "3001")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "talentx", cfg.App.AppName)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "5432", cfg.Database.DBPort)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Empty(t, cfg.AI.Provider)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "3001")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("")
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME, APP_ENV, JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_TTL", "60")
	t.Setenv("AI_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AI_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Database.Enabled())
	assert.EqualValues(t, 12, cfg.Database.PoolMaxConns)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
}

func TestLoad_InvalidProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load("")
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	t.Setenv("AI_PROVIDER", "llama")
	_, err = Load("")
	require.ErrorIs(t, err, errInvalidEnv)
}

func TestLoad_EnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "from-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nOPENAI_MODEL=gpt-4o-mini\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("OPENAI_MODEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAIModel)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	setRequired(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
