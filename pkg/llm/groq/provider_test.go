package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinedesk-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_SendsOpenAIPayload(t *testing.T) {
	var got completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[{"index":0,"message":{"role":"assistant","content":"Sure thing!"}}]}`))
	}))
	defer srv.Close()

	p := NewGroqProvider(srv.URL, "secret", "llama-3.1-8b-instant")
	out, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "hi"}},
		llm.WithTemperature(0.5), llm.WithMaxTokens(50),
	)

	require.NoError(t, err)
	assert.Equal(t, "Sure thing!", out)
	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	assert.Equal(t, 0.5, got.Temperature)
	assert.Equal(t, 50, got.MaxTokens)
	assert.Len(t, got.Messages, 2)
	assert.False(t, got.Stream)
}

func TestChat_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := NewGroqProvider(srv.URL, "bad", "m").Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestChat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewGroqProvider(srv.URL, "k", "m").Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoChoices)
}
