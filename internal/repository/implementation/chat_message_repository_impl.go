package implementation

import (
	"context"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/mapper"
	"dinedesk-be/internal/model"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db    *gorm.DB
	store gormStore[entity.ChatMessage, model.ChatMessage]
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	m := mapper.NewChatMapper()
	return &ChatMessageRepositoryImpl{
		db:    db,
		store: newGormStore(db, m.ChatMessageToEntity, m.ChatMessageToModel),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	return r.store.create(ctx, message)
}

// DeleteBySessionId hard-deletes; the session row goes in the same transaction.
func (r *ChatMessageRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("chat_session_id = ?", sessionId).Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	return r.store.findAll(ctx, specs...)
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.count(ctx, specs...)
}
