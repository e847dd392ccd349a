// Package groq talks to Groq's OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinedesk-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

type GroqProvider struct {
	modelName string
	client    *resty.Client
}

var _ llm.LLMProvider = &GroqProvider{}

func NewGroqProvider(baseURL, apiKey, modelName string) *GroqProvider {
	return &GroqProvider{
		modelName: modelName,
		client: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p,omitempty"`
	MaxTokens   int       `json:"max_completion_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type completionResponse struct {
	Id      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int     `json:"index"`
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

var ErrNoChoices = errors.New("groq: no choices in response")

func (g *GroqProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Resolve(g.modelName, opts...)

	messages := make([]message, len(history))
	for i, msg := range history {
		messages[i] = message{Role: msg.Role, Content: msg.Content}
	}

	var (
		out     completionResponse
		failure errorResponse
	)
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(completionRequest{
			Model:       options.Model,
			Messages:    messages,
			Temperature: options.Temperature,
			TopP:        options.TopP,
			MaxTokens:   options.MaxTokens,
		}).
		SetResult(&out).
		SetError(&failure).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	if resp.IsError() {
		if failure.Error.Message != "" {
			return "", fmt.Errorf("groq error: status %d: %s", resp.StatusCode(), failure.Error.Message)
		}
		return "", fmt.Errorf("groq error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", ErrNoChoices
	}
	return out.Choices[0].Message.Content, nil
}

func (g *GroqProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
