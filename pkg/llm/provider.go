// Package llm is the provider-neutral surface the concierge phrases replies
// through. Backends live in subpackages.
package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// LLMProvider is implemented by every backend.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
	// Generate is Chat with a single user message.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// Options are the sampling knobs a call may override. A zero MaxTokens or
// TopP leaves the backend default in place.
type Options struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	Model       string
}

type Option func(*Options)

func WithTemperature(t float64) Option { return func(o *Options) { o.Temperature = t } }
func WithMaxTokens(n int) Option { return func(o *Options) { o.MaxTokens = n } }
func WithTopP(p float64) Option { return func(o *Options) { o.TopP = p } }
func WithModel(name string) Option { return func(o *Options) { o.Model = name } }

// Resolve layers opts over a temperature of 0.7 and the backend's model.
func Resolve(defaultModel string, opts ...Option) Options {
	o := Options{Temperature: 0.7, Model: defaultModel}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
