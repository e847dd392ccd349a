package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	body := []byte(`{"data":{"session_id":"abc"},"occurred_at":"2026-10-15T15:04:05Z"}`)

	e, err := Decode(ChatSessionCreated, body)
	require.NoError(t, err)

	assert.Equal(t, ChatSessionCreated, e.Type)
	assert.Equal(t, "abc", e.Data["session_id"])
	assert.Equal(t, time.Date(2026, 10, 15, 15, 4, 5, 0, time.UTC), e.OccurredAt)
}

func TestDecode_EmptyData(t *testing.T) {
	e, err := Decode(ChatSessionDeleted, []byte(`{"occurred_at":"2026-10-15T15:04:05Z"}`))
	require.NoError(t, err)
	assert.NotNil(t, e.Data)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(ChatMessageAppended, []byte("not-json"))
	assert.ErrorContains(t, err, ChatMessageAppended)
}

func TestEncode_OmitsType(t *testing.T) {
	body, err := New(ChatSessionCreated, map[string]interface{}{"title": "Chat"}).Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(body), ChatSessionCreated)
	assert.Contains(t, string(body), `"title":"Chat"`)
}
