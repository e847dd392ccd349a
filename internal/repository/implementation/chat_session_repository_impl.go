package implementation

import (
	"context"
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/mapper"
	"dinedesk-be/internal/model"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db    *gorm.DB
	store gormStore[entity.ChatSession, model.ChatSession]
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	m := mapper.NewChatMapper()
	return &ChatSessionRepositoryImpl{
		db:    db,
		store: newGormStore(db, m.ChatSessionToEntity, m.ChatSessionToModel),
	}
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	return r.store.create(ctx, session)
}

func (r *ChatSessionRepositoryImpl) SetFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.updateRow(ctx, id, fields)
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ChatSession{}, "id = ?", id).Error
}

// Touch is a single UPDATE so concurrent appends never lose a count.
func (r *ChatSessionRepositoryImpl) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updateRow(ctx, id, map[string]interface{}{
		"message_count":    gorm.Expr("message_count + ?", 1),
		"last_activity_at": at,
		"status":           string(entity.ChatSessionStatusActive),
	})
}

// updateRow is a single UPDATE; a missing row is gorm.ErrRecordNotFound.
func (r *ChatSessionRepositoryImpl) updateRow(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	return r.store.findOne(ctx, specs...)
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	return r.store.findAll(ctx, specs...)
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.count(ctx, specs...)
}
