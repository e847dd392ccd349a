package factory

import (
	"testing"

	"dinedesk-be/internal/config"
	"dinedesk-be/pkg/llm/groq"
	"dinedesk-be/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(config.AIConfig{LLMProvider: "none"})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewLLMProvider(config.AIConfig{LLMProvider: "ollama", LLMModel: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &ollama.OllamaProvider{}, p)

	p, err = NewLLMProvider(config.AIConfig{LLMProvider: "groq", GroqAPIKey: "k", GroqBaseURL: "http://localhost"})
	require.NoError(t, err)
	assert.IsType(t, &groq.GroqProvider{}, p)

	_, err = NewLLMProvider(config.AIConfig{LLMProvider: "groq"})
	assert.Error(t, err)

	_, err = NewLLMProvider(config.AIConfig{LLMProvider: "gemini"})
	assert.Error(t, err)
}
