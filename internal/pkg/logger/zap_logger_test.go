package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FlattensDetails(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := newZapLogger(core)

	l.Debug("ChatService", "dropped below level", nil)
	l.Warn("ChatService", "Failed to rename chat", map[string]interface{}{
		"session_id": "abc",
		"error":      "locked",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Failed to rename chat", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"module":     "ChatService",
		"session_id": "abc",
		"error":      "locked",
	}, entries[0].ContextMap())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("Any", "ignored", map[string]interface{}{"k": 1})
	assert.NoError(t, l.Sync())
}
