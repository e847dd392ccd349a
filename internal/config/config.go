package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	ActiveChatStoreMemory = "memory"
	ActiveChatStoreRedis  = "redis"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	LLMLogFilePath     string
	CorsAllowedOrigins string
	WebDir             string
	NatsURL            string // empty disables event publishing
	RedisURL           string
	ActiveChatStore    string
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
	TokenTTL  time.Duration
}

type AIConfig struct {
	LLMProvider   string // "none", "ollama" or "groq"
	LLMModel      string
	OllamaBaseURL string
	GroqAPIKey    string
	GroqBaseURL   string
}

const defaultJwtSecret = "change-me"

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               env("APP_PORT", "5000"),
			Environment:        env("GO_ENV", "development"),
			LogFilePath:        env("LOG_FILE_PATH", "logs/app.log"),
			LLMLogFilePath:     env("LLM_LOG_FILE_PATH", "logs/llm.log"),
			CorsAllowedOrigins: env("CORS_ALLOWED_ORIGINS", "http://localhost:5000"),
			WebDir:             env("WEB_DIR", "./web"),
			NatsURL:            env("NATS_URL", ""),
			RedisURL:           env("REDIS_URL", "redis://localhost:6379"),
			ActiveChatStore:    strings.ToLower(env("ACTIVE_CHAT_STORE", ActiveChatStoreMemory)),
			OtelEnabled:        envBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: env("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: env("JWT_SECRET", defaultJwtSecret),
			TokenTTL:  time.Duration(envInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Ai: AIConfig{
			LLMProvider:   strings.ToLower(env("LLM_PROVIDER", "none")),
			LLMModel:      env("LLM_MODEL", "llama-3.1-8b-instant"),
			OllamaBaseURL: env("OLLAMA_BASE_URL", "http://localhost:11434"),
			GroqAPIKey:    env("GROQ_API_KEY", ""),
			GroqBaseURL:   env("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// Validate reports every setting the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Connection == "" {
		errs = append(errs, errors.New("DB_CONNECTION_STRING is required"))
	}
	if c.IsProduction() && c.Auth.JwtSecret == defaultJwtSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if strings.Contains(c.App.CorsAllowedOrigins, "*") {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must list explicit origins, the auth cookie needs credentialed CORS"))
	}
	switch c.App.ActiveChatStore {
	case ActiveChatStoreMemory, ActiveChatStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("ACTIVE_CHAT_STORE must be %q or %q, got %q",
			ActiveChatStoreMemory, ActiveChatStoreRedis, c.App.ActiveChatStore))
	}
	if c.Ai.LLMProvider == "groq" && c.Ai.GroqAPIKey == "" {
		errs = append(errs, errors.New("GROQ_API_KEY is required when LLM_PROVIDER=groq"))
	}
	return errors.Join(errs...)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(env(key, "")); err == nil {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(env(key, "")); err == nil {
		return v
	}
	return fallback
}
