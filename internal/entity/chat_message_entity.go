package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	// Attachments holds the rendered reply payload (cards, quick replies, menu).
	// It is opaque to the storage layer.
	Attachments json.RawMessage
	CreatedAt   time.Time
}
