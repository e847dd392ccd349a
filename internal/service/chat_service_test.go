package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/repository/memory"
	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/composer"
	"dinedesk-be/pkg/concierge/slots"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	histories [][]slots.Turn
	err       error
}

func (r *stubResponder) Respond(_ context.Context, message string, history []slots.Turn) (*composer.BotReply, error) {
	r.histories = append(r.histories, history)
	if r.err != nil {
		return nil, r.err
	}
	return &composer.BotReply{
		Id:          "generated",
		Type:        "bot",
		Content:     "Echo: " + message,
		MessageType: composer.KindCard,
		Cards:       []catalog.RestaurantCard{{Type: "restaurant", Id: "rest_1", Name: "Mario's"}},
		QuickReplies: []composer.QuickReply{
			{Text: "Book a table", Action: "booking"},
		},
	}, nil
}

func newChatService(t *testing.T) (*chatService, *stubResponder) {
	t.Helper()
	store, _ := newStore(t)
	responder := &stubResponder{}
	svc := NewChatService(store, memory.NewActiveChatRepository(time.Hour), responder, logger.NewNopLogger()).(*chatService)
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC) }
	return svc, responder
}

func TestEnsureActiveSession_CreatesOnceWithWelcome(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	first, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	again, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	history, err := svc.GetHistory(ctx, user, "Ana")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "bot", history[0].Type)
	assert.True(t, strings.HasPrefix(history[0].Content, "Welcome back, Ana!"))
	assert.Len(t, history[0].QuickReplies, 4)
}

func TestSendMessage(t *testing.T) {
	svc, responder := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	res, err := svc.SendMessage(ctx, user, "Ana", "  Book a table for 4  ")
	require.NoError(t, err)

	assert.Equal(t, "Book a table for 4", res.UserMessage.Content)
	assert.Equal(t, "user", res.UserMessage.Type)
	assert.Equal(t, "Echo: Book a table for 4", res.BotResponse.Content)
	assert.NotEqual(t, "generated", res.BotResponse.Id)

	// the welcome message is the only earlier turn
	require.Len(t, responder.histories, 1)
	require.Len(t, responder.histories[0], 1)
	assert.Equal(t, slots.RoleBot, responder.histories[0][0].Role)

	history, err := svc.GetHistory(ctx, user, "Ana")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, res.BotResponse.Id, history[2].Id.String())
	assert.Equal(t, "card", history[2].MessageType)
	assert.Equal(t, "Mario's", history[2].Cards[0].Name)
	assert.Equal(t, "text", history[1].MessageType)
}

func TestSendMessage_HistoryWindow(t *testing.T) {
	svc, responder := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	for _, text := range []string{"one", "two", "three", "four"} {
		_, err := svc.SendMessage(ctx, user, "Ana", text)
		require.NoError(t, err)
	}

	last := responder.histories[len(responder.histories)-1]
	require.Len(t, last, slots.DefaultWindow)
	assert.Equal(t, slots.Turn{Role: slots.RoleBot, Text: "Echo: three"}, last[len(last)-1])
}

func TestSendMessage_RenamesDefaultTitleOnce(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	long := strings.Repeat("pizza ", 20)
	_, err := svc.SendMessage(ctx, user, "Ana", long)
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, user, "Ana", "second message")
	require.NoError(t, err)

	chats, err := svc.ListChats(ctx, user)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, strings.TrimSpace(long[:50]), chats[0].Title)
	assert.Equal(t, 5, chats[0].MessageCount)
}

func TestSendMessage_Empty(t *testing.T) {
	svc, responder := newChatService(t)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "Ana", "   ")
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, responder.histories)
}

func TestSendMessage_AssistantFailure(t *testing.T) {
	svc, responder := newChatService(t)
	responder.err = errors.New("catalog down")

	_, err := svc.SendMessage(context.Background(), uuid.New(), "Ana", "find food")
	require.Error(t, err)
	assert.False(t, apperror.IsValidation(err))
}

func TestNewChat_EndsCurrent(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	first, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)

	res, err := svc.NewChat(ctx, user, "Ana")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEqual(t, first, res.ChatId)
	assert.Equal(t, "Hello Ana! I'm ready to help you with restaurant recommendations, bookings, and more. What can I do for you?", res.WelcomeMessage.Content)

	old, err := svc.store.GetSession(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "ended", string(old.Status))

	current, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	assert.Equal(t, res.ChatId, current)
}

func TestLoadChat(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	first, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	_, err = svc.NewChat(ctx, user, "Ana")
	require.NoError(t, err)

	res, err := svc.LoadChat(ctx, user, first)
	require.NoError(t, err)
	assert.Equal(t, first, res.ChatId)
	assert.Len(t, res.Messages, 1)

	current, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	assert.Equal(t, first, current)

	_, err = svc.LoadChat(ctx, uuid.New(), first)
	assert.True(t, apperror.IsNotFound(err))
	_, err = svc.LoadChat(ctx, user, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteChat(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	current, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)

	assert.True(t, apperror.IsValidation(svc.DeleteChat(ctx, uuid.New(), current)))
	require.NoError(t, svc.DeleteChat(ctx, user, current))
	assert.True(t, apperror.IsValidation(svc.DeleteChat(ctx, user, current)))

	chats, err := svc.ListChats(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, chats)

	next, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)
	assert.NotEqual(t, current, next)
}

func TestListChats_Formatting(t *testing.T) {
	svc, _ := newChatService(t)
	ctx := context.Background()
	user := uuid.New()

	_, err := svc.EnsureActiveSession(ctx, user, "Ana")
	require.NoError(t, err)

	chats, err := svc.ListChats(ctx, user)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "October 15, 2026", chats[0].FormattedDate)
	assert.Equal(t, "03:04 PM", chats[0].FormattedTime)
	assert.Equal(t, "2 hours ago", chats[0].RelativeTime)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		10 * time.Second: "Just now",
		90 * time.Second: "1 minute ago",
		59 * time.Minute: "59 minutes ago",
		60 * time.Minute: "1 hour ago",
		61 * time.Minute: "1 hour ago",
		5 * time.Hour:    "5 hours ago",
		26 * time.Hour:   "1 day ago",
		72 * time.Hour:   "3 days ago",
	}
	for ago, want := range cases {
		assert.Equal(t, want, relativeTime(now, now.Add(-ago)), ago.String())
	}
}
