package mapper

import (
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/model"

	"gorm.io/datatypes"
)

// jsonNull is how a message without attachments is stored.
const jsonNull = "null"

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		Status:         entity.ChatSessionStatus(s.Status),
		MessageCount:   s.MessageCount,
		StartedAt:      s.StartedAt,
		LastActivityAt: s.LastActivityAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      timePtr(s.UpdatedAt),
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:             s.Id,
		UserId:         s.UserId,
		Title:          s.Title,
		Status:         string(s.Status),
		MessageCount:   s.MessageCount,
		StartedAt:      s.StartedAt,
		LastActivityAt: s.LastActivityAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      timeValue(s.UpdatedAt),
	}
}

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	e := &entity.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		CreatedAt:     msg.CreatedAt,
	}
	if raw := string(msg.Attachments); raw != "" && raw != jsonNull {
		e.Attachments = []byte(msg.Attachments)
	}
	return e
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	out := &model.ChatMessage{
		Id:            msg.Id,
		ChatSessionId: msg.ChatSessionId,
		Role:          msg.Role,
		Content:       msg.Content,
		Attachments:   datatypes.JSON(jsonNull),
		CreatedAt:     msg.CreatedAt,
	}
	if len(msg.Attachments) > 0 {
		out.Attachments = datatypes.JSON(msg.Attachments)
	}
	return out
}

// timePtr maps a zero time to nil.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
