package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "memory", AppConfig.SessionBackend)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.Equal(t, "gemini-1.5-flash", AppConfig.GeminiModel)
	assert.False(t, IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("GEMINI_API_KEY", "test-key")

	LoadConfig()

	assert.Equal(t, "9090", AppConfig.AppPort)
	assert.Equal(t, "redis", AppConfig.SessionBackend)
	assert.Equal(t, "redis:6379", AppConfig.RedisAddr)
	assert.Equal(t, "test-key", AppConfig.GeminiAPIKey)
	assert.True(t, IsProduction())
}
