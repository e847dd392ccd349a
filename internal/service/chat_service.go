package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"dinedesk-be/internal/constant"
	"dinedesk-be/internal/dto"
	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/pkg/concierge/composer"
	"dinedesk-be/pkg/concierge/intent"
	"dinedesk-be/pkg/concierge/slots"

	"github.com/google/uuid"
)

// Responder produces the assistant's answer to one user message.
type Responder interface {
	Respond(ctx context.Context, message string, history []slots.Turn) (*composer.BotReply, error)
}

type IChatService interface {
	EnsureActiveSession(ctx context.Context, userId uuid.UUID, userName string) (uuid.UUID, error)
	SendMessage(ctx context.Context, userId uuid.UUID, userName, message string) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, userName string) ([]*dto.ChatMessageResponse, error)
	NewChat(ctx context.Context, userId uuid.UUID, userName string) (*dto.NewChatResponse, error)
	ListChats(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSummaryResponse, error)
	LoadChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.LoadChatResponse, error)
	DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error
}

type chatService struct {
	store     IChatSessionStore
	active    contract.ActiveChatRepository
	assistant Responder
	logger    logger.ILogger
	now       func() time.Time
}

func NewChatService(store IChatSessionStore, active contract.ActiveChatRepository, assistant Responder, log logger.ILogger) IChatService {
	return &chatService{
		store:     store,
		active:    active,
		assistant: assistant,
		logger:    log,
		now:       time.Now,
	}
}

// EnsureActiveSession returns the caller's current chat, starting a new one
// with a welcome message when there is none or it no longer exists.
func (s *chatService) EnsureActiveSession(ctx context.Context, userId uuid.UUID, userName string) (uuid.UUID, error) {
	sessionId, ok, err := s.active.Get(ctx, userId)
	if err != nil {
		return uuid.Nil, fmt.Errorf("lookup active chat: %w", err)
	}
	if ok {
		session, err := s.store.GetSession(ctx, sessionId)
		if err == nil && session.UserId == userId {
			return sessionId, nil
		}
		if err != nil && !apperror.IsNotFound(err) {
			return uuid.Nil, err
		}
	}

	sessionId, _, err = s.startSession(ctx, userId, fmt.Sprintf(constant.WelcomeBackMessage, displayName(userName)))
	return sessionId, err
}

func (s *chatService) startSession(ctx context.Context, userId uuid.UUID, welcome string) (uuid.UUID, *dto.ChatMessageResponse, error) {
	sessionId, err := s.store.CreateSession(ctx, userId)
	if err != nil {
		return uuid.Nil, nil, err
	}

	attachments := composer.Attachments{
		MessageType:  composer.KindText,
		QuickReplies: composer.QuickReplies(intent.General),
	}
	raw, err := json.Marshal(attachments)
	if err != nil {
		return uuid.Nil, nil, err
	}
	messageId, err := s.store.AppendMessage(ctx, sessionId, constant.ChatMessageRoleBot, welcome, raw)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if err := s.active.Set(ctx, userId, sessionId); err != nil {
		return uuid.Nil, nil, fmt.Errorf("remember active chat: %w", err)
	}

	return sessionId, &dto.ChatMessageResponse{
		Id:           messageId,
		Type:         constant.ChatMessageRoleBot,
		Content:      welcome,
		Timestamp:    s.now().UTC(),
		MessageType:  string(composer.KindText),
		QuickReplies: attachments.QuickReplies,
	}, nil
}

// SendMessage stores the user message, asks the assistant and stores the
// reply. The three steps are separate writes.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, userName, message string) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return nil, apperror.Validation("Empty message")
	}

	sessionId, err := s.EnsureActiveSession(ctx, userId, userName)
	if err != nil {
		return nil, err
	}

	prior, err := s.store.ListMessages(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	userAttachments, _ := json.Marshal(composer.Attachments{MessageType: composer.KindText})
	userMessageId, err := s.store.AppendMessage(ctx, sessionId, constant.ChatMessageRoleUser, text, userAttachments)
	if err != nil {
		return nil, err
	}
	if !hasUserMessage(prior) {
		s.renameFromFirstMessage(ctx, sessionId, text)
	}

	reply, err := s.assistant.Respond(ctx, text, toTurns(prior))
	if err != nil {
		return nil, fmt.Errorf("assistant reply: %w", err)
	}

	raw, err := json.Marshal(reply.Attachments())
	if err != nil {
		return nil, err
	}
	botMessageId, err := s.store.AppendMessage(ctx, sessionId, constant.ChatMessageRoleBot, reply.Content, raw)
	if err != nil {
		return nil, err
	}
	reply.Id = botMessageId.String()

	return &dto.SendMessageResponse{
		UserMessage: &dto.ChatMessageResponse{
			Id:          userMessageId,
			Type:        constant.ChatMessageRoleUser,
			Content:     text,
			Timestamp:   s.now().UTC(),
			MessageType: string(composer.KindText),
		},
		BotResponse: reply,
	}, nil
}

func hasUserMessage(messages []*entity.ChatMessage) bool {
	for _, m := range messages {
		if m.Role == constant.ChatMessageRoleUser {
			return true
		}
	}
	return false
}

// renameFromFirstMessage replaces the generated "Chat <date>" title.
// Failure only costs the nicer title.
func (s *chatService) renameFromFirstMessage(ctx context.Context, sessionId uuid.UUID, text string) {
	session, err := s.store.GetSession(ctx, sessionId)
	if err != nil || !strings.HasPrefix(session.Title, "Chat ") {
		return
	}
	title := text
	if utf8.RuneCountInString(title) > constant.ChatSessionTitleMaxLen {
		title = strings.TrimSpace(string([]rune(title)[:constant.ChatSessionTitleMaxLen]))
	}
	if err := s.store.RenameSession(ctx, sessionId, title); err != nil {
		s.logger.Warn("ChatService", "Failed to rename chat session", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
}

// toTurns keeps the trailing window the slot extractor looks at.
func toTurns(messages []*entity.ChatMessage) []slots.Turn {
	if len(messages) > slots.DefaultWindow {
		messages = messages[len(messages)-slots.DefaultWindow:]
	}
	turns := make([]slots.Turn, 0, len(messages))
	for _, m := range messages {
		role := slots.RoleBot
		if m.Role == constant.ChatMessageRoleUser {
			role = slots.RoleUser
		}
		turns = append(turns, slots.Turn{Role: role, Text: m.Content})
	}
	return turns
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, userName string) ([]*dto.ChatMessageResponse, error) {
	sessionId, err := s.EnsureActiveSession(ctx, userId, userName)
	if err != nil {
		return nil, err
	}
	messages, err := s.store.ListMessages(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return s.toMessageResponses(messages), nil
}

func (s *chatService) NewChat(ctx context.Context, userId uuid.UUID, userName string) (*dto.NewChatResponse, error) {
	s.endCurrent(ctx, userId, uuid.Nil)

	sessionId, welcome, err := s.startSession(ctx, userId, fmt.Sprintf(constant.NewChatMessage, displayName(userName)))
	if err != nil {
		return nil, err
	}
	return &dto.NewChatResponse{
		Success:        true,
		Message:        "New chat started",
		ChatId:         sessionId,
		WelcomeMessage: welcome,
	}, nil
}

// endCurrent marks the caller's active chat as ended unless it is keep.
func (s *chatService) endCurrent(ctx context.Context, userId, keep uuid.UUID) {
	current, ok, err := s.active.Get(ctx, userId)
	if err != nil || !ok || current == keep {
		return
	}
	if err := s.store.EndSession(ctx, current); err != nil && !apperror.IsNotFound(err) {
		s.logger.Warn("ChatService", "Failed to end chat session", map[string]interface{}{
			"session_id": current.String(),
			"error":      err.Error(),
		})
	}
}

func (s *chatService) ListChats(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSummaryResponse, error) {
	sessions, err := s.store.ListSessions(ctx, userId, constant.ChatSessionListLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]*dto.ChatSummaryResponse, len(sessions))
	for i, session := range sessions {
		out[i] = &dto.ChatSummaryResponse{
			Id:            session.Id,
			Title:         session.Title,
			Status:        string(session.Status),
			MessageCount:  session.MessageCount,
			StartedAt:     session.StartedAt,
			LastActivity:  session.LastActivityAt,
			FormattedDate: session.LastActivityAt.Format("January 02, 2006"),
			FormattedTime: session.LastActivityAt.Format("03:04 PM"),
			RelativeTime:  relativeTime(now, session.LastActivityAt),
		}
	}
	return out, nil
}

func relativeTime(now, then time.Time) string {
	diff := now.Sub(then)
	switch {
	case diff >= 24*time.Hour:
		return plural(int(diff/(24*time.Hour)), "day")
	case diff >= time.Hour:
		return plural(int(diff/time.Hour), "hour")
	case diff >= time.Minute:
		return plural(int(diff/time.Minute), "minute")
	default:
		return "Just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// LoadChat switches the caller to one of their own chats.
func (s *chatService) LoadChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.LoadChatResponse, error) {
	session, err := s.store.GetSession(ctx, chatId)
	if err != nil {
		return nil, err
	}
	if session.UserId != userId {
		return nil, apperror.NotFound("chat session", chatId.String())
	}

	s.endCurrent(ctx, userId, chatId)

	messages, err := s.store.ListMessages(ctx, chatId)
	if err != nil {
		return nil, err
	}
	if err := s.active.Set(ctx, userId, chatId); err != nil {
		return nil, fmt.Errorf("remember active chat: %w", err)
	}
	return &dto.LoadChatResponse{
		Success:  true,
		ChatId:   chatId,
		Messages: s.toMessageResponses(messages),
	}, nil
}

// DeleteChat reports a missing or foreign chat as a bad request.
func (s *chatService) DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error {
	err := s.store.DeleteSession(ctx, chatId, userId)
	if apperror.IsNotFound(err) || apperror.IsForbidden(err) {
		return apperror.Validation("Failed to delete chat")
	}
	if err != nil {
		return err
	}

	if current, ok, err := s.active.Get(ctx, userId); err == nil && ok && current == chatId {
		if err := s.active.Clear(ctx, userId); err != nil {
			return fmt.Errorf("clear active chat: %w", err)
		}
	}
	return nil
}

func (s *chatService) toMessageResponses(messages []*entity.ChatMessage) []*dto.ChatMessageResponse {
	out := make([]*dto.ChatMessageResponse, len(messages))
	for i, m := range messages {
		res := &dto.ChatMessageResponse{
			Id:          m.Id,
			Type:        m.Role,
			Content:     m.Content,
			Timestamp:   m.CreatedAt,
			MessageType: string(composer.KindText),
		}
		if len(m.Attachments) > 0 {
			var a composer.Attachments
			if err := json.Unmarshal(m.Attachments, &a); err != nil {
				s.logger.Debug("ChatService", "Unreadable message attachments", map[string]interface{}{
					"message_id": m.Id.String(),
					"error":      err.Error(),
				})
			} else {
				if a.MessageType != "" {
					res.MessageType = string(a.MessageType)
				}
				res.Cards = a.Cards
				res.QuickReplies = a.QuickReplies
				res.Menu = a.Menu
			}
		}
		out[i] = res
	}
	return out
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return name
}
