package server

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"dinedesk-be/internal/bootstrap"
	"dinedesk-be/internal/config"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, origins string) *Server {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			LLMLogFilePath:     filepath.Join(dir, "llm.log"),
			CorsAllowedOrigins: origins,
			WebDir:             dir,
			ActiveChatStore:    config.ActiveChatStoreMemory,
		},
		Auth: config.AuthConfig{JwtSecret: "test-secret", TokenTTL: time.Hour},
		Ai:   config.AIConfig{LLMProvider: "none"},
	}

	container, err := bootstrap.NewContainer(context.Background(), testdb.New(t), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return New(cfg, container)
}

func TestServer_Healthz(t *testing.T) {
	s := newServer(t, "http://localhost:5000")

	resp, err := s.App().Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestServer_MetricsExposeRequestCounter(t *testing.T) {
	s := newServer(t, "http://localhost:5000")

	_, err := s.App().Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)

	resp, err := s.App().Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "dinedesk_http_requests_total")
}

func TestServer_ApiRequiresAuth(t *testing.T) {
	s := newServer(t, "http://localhost:5000")

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/restaurants/popular", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	resp, err = s.App().Test(httptest.NewRequest("POST", "/api/send_message", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestServer_CorsCredentialsForExplicitOrigin(t *testing.T) {
	s := newServer(t, "http://localhost:5000")

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5000")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestServer_WildcardOriginsDropCredentials(t *testing.T) {
	var s *Server
	require.NotPanics(t, func() { s = newServer(t, "*") })

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, err := s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}
