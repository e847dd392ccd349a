package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSessionStatus string

const (
	ChatSessionStatusActive ChatSessionStatus = "active"
	ChatSessionStatusEnded  ChatSessionStatus = "ended"
)

type ChatSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Title          string
	Status         ChatSessionStatus
	MessageCount   int
	StartedAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
