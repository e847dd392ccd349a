package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.App.OtelEnabled)
}

func TestLoad_TokenTTL(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "2")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{
				Environment:        "development",
				CorsAllowedOrigins: "http://localhost:5000",
				ActiveChatStore:    ActiveChatStoreMemory,
			},
			Database: DatabaseConfig{Connection: "postgres://localhost/dinedesk"},
			Auth:     AuthConfig{JwtSecret: defaultJwtSecret},
			Ai:       AIConfig{LLMProvider: "none"},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.App.Environment = EnvProduction
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg = valid()
	cfg.App.CorsAllowedOrigins = "*"
	assert.ErrorContains(t, cfg.Validate(), "CORS_ALLOWED_ORIGINS")

	cfg = valid()
	cfg.App.ActiveChatStore = "memcached"
	assert.ErrorContains(t, cfg.Validate(), "ACTIVE_CHAT_STORE")

	cfg = valid()
	cfg.Database.Connection = ""
	cfg.Ai.LLMProvider = "groq"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "DB_CONNECTION_STRING")
	assert.ErrorContains(t, err, "GROQ_API_KEY")
}
