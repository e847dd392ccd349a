package factory

import (
	"fmt"

	"dinedesk-be/internal/config"
	"dinedesk-be/pkg/llm"
	"dinedesk-be/pkg/llm/groq"
	"dinedesk-be/pkg/llm/ollama"
)

// NewLLMProvider returns nil, nil for provider "none"; callers treat a nil
// provider as "no phrasing".
func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.LLMProvider {
	case "", "none":
		return nil, nil
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, cfg.LLMModel), nil
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
		return groq.NewGroqProvider(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.LLMModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
