package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID     `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	Title          string        `gorm:"type:text;not null"`
	Status         string        `gorm:"type:varchar(20);not null;index"`
	MessageCount   int           `gorm:"not null"`
	StartedAt      time.Time     `gorm:"not null"`
	LastActivityAt time.Time     `gorm:"not null;index"`
	CreatedAt      time.Time     `gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime"`
	Messages       []ChatMessage `gorm:"foreignKey:ChatSessionId;constraint:OnDelete:CASCADE"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
