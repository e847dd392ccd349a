package ollama

import (
	"context"
	"fmt"
	"time"

	"dinedesk-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

type OllamaProvider struct {
	modelName string
	client    *resty.Client
}

var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		modelName: modelName,
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(60 * time.Second),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *modelOptions `json:"options,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type modelOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatResponse struct {
	Model   string  `json:"model"`
	Message message `json:"message"`
	Done    bool    `json:"done"`
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Resolve(o.modelName, opts...)

	messages := make([]message, len(history))
	for i, msg := range history {
		messages[i] = message{Role: msg.Role, Content: msg.Content}
	}

	var out chatResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model:    options.Model,
			Messages: messages,
			Stream:   false,
			Options: &modelOptions{
				Temperature: options.Temperature,
				TopP:        options.TopP,
				NumPredict:  options.MaxTokens,
			},
		}).
		SetResult(&out).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	return out.Message.Content, nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return o.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
