package dto

import (
	"time"

	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/composer"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type QuickReplyRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

// ChatMessageResponse is a stored message as the chat page renders it.
// Bot messages carry their cards, quick replies and menu again on replay.
type ChatMessageResponse struct {
	Id           uuid.UUID                `json:"id"`
	Type         string                   `json:"type"`
	Content      string                   `json:"content"`
	Timestamp    time.Time                `json:"timestamp"`
	MessageType  string                   `json:"message_type"`
	Cards        []catalog.RestaurantCard `json:"cards,omitempty"`
	QuickReplies []composer.QuickReply    `json:"quick_replies,omitempty"`
	Menu         *catalog.Menu            `json:"menu,omitempty"`
}

type SendMessageResponse struct {
	UserMessage *ChatMessageResponse `json:"user_message"`
	BotResponse *composer.BotReply   `json:"bot_response"`
}

type NewChatResponse struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message"`
	ChatId         uuid.UUID            `json:"chat_id"`
	WelcomeMessage *ChatMessageResponse `json:"welcome_message"`
}

type ChatSummaryResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	MessageCount  int       `json:"message_count"`
	StartedAt     time.Time `json:"started_at"`
	LastActivity  time.Time `json:"last_activity"`
	FormattedDate string    `json:"formatted_date"`
	FormattedTime string    `json:"formatted_time"`
	RelativeTime  string    `json:"relative_time"`
}

type ChatHistoryResponse struct {
	Success      bool                   `json:"success"`
	ChatSessions []*ChatSummaryResponse `json:"chat_sessions"`
}

type LoadChatResponse struct {
	Success  bool                   `json:"success"`
	ChatId   uuid.UUID              `json:"chat_id"`
	Messages []*ChatMessageResponse `json:"messages"`
}
