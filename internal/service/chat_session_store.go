package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dinedesk-be/internal/constant"
	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/repository/scope"
	"dinedesk-be/internal/repository/specification"
	"dinedesk-be/internal/repository/unitofwork"
	"dinedesk-be/pkg/events"
	"dinedesk-be/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IChatSessionStore persists chat sessions and their messages.
type IChatSessionStore interface {
	CreateSession(ctx context.Context, ownerId uuid.UUID) (uuid.UUID, error)
	AppendMessage(ctx context.Context, sessionId uuid.UUID, role, text string, attachments json.RawMessage) (uuid.UUID, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*entity.ChatSession, error)
	ListSessions(ctx context.Context, ownerId uuid.UUID, limit int) ([]*entity.ChatSession, error)
	ListMessages(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
	RenameSession(ctx context.Context, sessionId uuid.UUID, title string) error
	EndSession(ctx context.Context, sessionId uuid.UUID) error
	DeleteSession(ctx context.Context, sessionId, ownerId uuid.UUID) error
}

type chatSessionStore struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
	now        func() time.Time
}

func NewChatSessionStore(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IChatSessionStore {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &chatSessionStore{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
		now:        time.Now,
	}
}

func (s *chatSessionStore) CreateSession(ctx context.Context, ownerId uuid.UUID) (uuid.UUID, error) {
	now := s.now().UTC()
	session := &entity.ChatSession{
		Id:             uuid.New(),
		UserId:         ownerId,
		Title:          "Chat " + now.Format(constant.ChatSessionTitleLayout),
		Status:         entity.ChatSessionStatusActive,
		StartedAt:      now,
		LastActivityAt: now,
		CreatedAt:      now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return uuid.Nil, fmt.Errorf("create chat session: %w", err)
	}

	s.publish(ctx, events.ChatSessionCreated, map[string]interface{}{
		"session_id": session.Id.String(),
		"user_id":    ownerId.String(),
		"title":      session.Title,
	})
	return session.Id, nil
}

// AppendMessage inserts the message and bumps the session counters in one
// transaction.
func (s *chatSessionStore) AppendMessage(ctx context.Context, sessionId uuid.UUID, role, text string, attachments json.RawMessage) (uuid.UUID, error) {
	if role != constant.ChatMessageRoleUser && role != constant.ChatMessageRoleBot {
		return uuid.Nil, apperror.Validation("unknown message role %q", role)
	}

	now := s.now().UTC()
	message := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          role,
		Content:       text,
		Attachments:   attachments,
		CreatedAt:     now,
	}

	err := s.uowFactory.Transaction(ctx, func(uow unitofwork.UnitOfWork) error {
		if err := uow.ChatSessionRepository().Touch(ctx, sessionId, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("chat session", sessionId.String())
			}
			return fmt.Errorf("touch chat session: %w", err)
		}
		if err := uow.ChatMessageRepository().Create(ctx, message); err != nil {
			return fmt.Errorf("insert chat message: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.publish(ctx, events.ChatMessageAppended, map[string]interface{}{
		"session_id": sessionId.String(),
		"message_id": message.Id.String(),
		"role":       role,
		"length":     len(text),
	})
	return message.Id, nil
}

func (s *chatSessionStore) GetSession(ctx context.Context, sessionId uuid.UUID) (*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.findSession(ctx, uow, sessionId)
}

func (s *chatSessionStore) findSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, fmt.Errorf("find chat session: %w", err)
	}
	if session == nil {
		return nil, apperror.NotFound("chat session", sessionId.String())
	}
	return session, nil
}

// ListSessions returns the owner's sessions, most recent activity first.
func (s *chatSessionStore) ListSessions(ctx context.Context, ownerId uuid.UUID, limit int) ([]*entity.ChatSession, error) {
	if limit <= 0 {
		limit = constant.ChatSessionListLimit
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: ownerId},
		specification.Scope(scope.OrderByLastActivityDesc),
		specification.Limit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list chat sessions: %w", err)
	}
	return sessions, nil
}

// ListMessages returns a session's messages oldest first.
func (s *chatSessionStore) ListMessages(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findSession(ctx, uow, sessionId); err != nil {
		return nil, err
	}
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.Scope(scope.OrderByCreatedAsc),
	)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	return messages, nil
}

func (s *chatSessionStore) RenameSession(ctx context.Context, sessionId uuid.UUID, title string) error {
	return s.setFields(ctx, sessionId, map[string]interface{}{
		"title":      title,
		"updated_at": s.now().UTC(),
	})
}

func (s *chatSessionStore) EndSession(ctx context.Context, sessionId uuid.UUID) error {
	now := s.now().UTC()
	return s.setFields(ctx, sessionId, map[string]interface{}{
		"status":           string(entity.ChatSessionStatusEnded),
		"last_activity_at": now,
		"updated_at":       now,
	})
}

func (s *chatSessionStore) setFields(ctx context.Context, sessionId uuid.UUID, fields map[string]interface{}) error {
	err := s.uowFactory.NewUnitOfWork(ctx).ChatSessionRepository().SetFields(ctx, sessionId, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("chat session", sessionId.String())
	}
	if err != nil {
		return fmt.Errorf("update chat session: %w", err)
	}
	return nil
}

// DeleteSession removes the session and its messages. Only the owner may
// delete a session.
func (s *chatSessionStore) DeleteSession(ctx context.Context, sessionId, ownerId uuid.UUID) error {
	err := s.uowFactory.Transaction(ctx, func(uow unitofwork.UnitOfWork) error {
		session, err := s.findSession(ctx, uow, sessionId)
		if err != nil {
			return err
		}
		if session.UserId != ownerId {
			return apperror.Forbidden("chat session belongs to another user")
		}
		if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
			return fmt.Errorf("delete chat messages: %w", err)
		}
		if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
			return fmt.Errorf("delete chat session: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.ChatSessionDeleted, map[string]interface{}{
		"session_id": sessionId.String(),
		"user_id":    ownerId.String(),
	})
	return nil
}

// publish never fails the caller; the bus is best effort.
func (s *chatSessionStore) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if err := s.publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		metrics.EventPublishFailuresTotal.WithLabelValues(eventType).Inc()
		s.logger.Warn("ChatSessionStore", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
