package concierge

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"testing"
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/testdb"
	"dinedesk-be/internal/repository/unitofwork"
	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/composer"
	"dinedesk-be/pkg/concierge/slots"
	"dinedesk-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

type seeded struct {
	mario, luigi, dragon, burger, taco entity.Restaurant
}

func newAssistant(t *testing.T, opts ...Option) (*Assistant, seeded) {
	t.Helper()
	db := testdb.New(t)

	var s seeded
	s.mario = testdb.Restaurant(t, db, testdb.DineIn("Mario's Italian Kitchen", "italian", 4.5))
	s.luigi = testdb.Restaurant(t, db, testdb.DineIn("Luigi's Trattoria", "italian", 4.1))
	s.dragon = testdb.Restaurant(t, db, testdb.DineIn("Dragon Palace", "chinese", 4.3))
	s.burger = testdb.Restaurant(t, db, testdb.DineIn("Burger Junction", "american", 4.0))

	taco := testdb.DineIn("Taco Fiesta", "mexican", 4.9)
	taco.ServicesOffered = []string{entity.ServiceTakeout, entity.ServiceDelivery}
	s.taco = testdb.Restaurant(t, db, taco)

	testdb.Dish(t, db, entity.Dish{RestaurantId: s.mario.Id, Name: "Margherita", Category: "pizza", Price: 14, IsAvailable: true, IsPopular: true})

	cat := catalog.New(unitofwork.NewRepositoryFactory(db),
		catalog.WithClock(func() time.Time { return fixedNow }),
		catalog.WithRoll(func() float64 { return 0.9 }),
	)
	return NewAssistant(cat, composer.New(), opts...), s
}

func names(cards []catalog.RestaurantCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestRespond_BookingInNewYork(t *testing.T) {
	a, s := newAssistant(t)

	reply, err := a.Respond(context.Background(), "Book a table for 4 tonight in New York", nil)
	require.NoError(t, err)

	assert.Equal(t, composer.KindCard, reply.MessageType)
	assert.Equal(t, "bot", reply.Type)
	assert.Contains(t, reply.Content, "4 people tonight")
	require.Len(t, reply.Cards, 3)
	assert.NotContains(t, names(reply.Cards), s.taco.Name)
	assert.Equal(t, []string{s.mario.Name, s.dragon.Name, s.luigi.Name}, names(reply.Cards))
	assert.Equal(t, "Book a table", reply.QuickReplies[0].Text)
	assert.Equal(t, "Different time", reply.QuickReplies[2].Text)
}

func TestRespond_CuisineSearch(t *testing.T) {
	a, s := newAssistant(t)

	reply, err := a.Respond(context.Background(), "Italian food", nil)
	require.NoError(t, err)

	assert.Equal(t, composer.KindCard, reply.MessageType)
	assert.Equal(t, "Here are some great Italian restaurants with their popular dishes:", reply.Content)
	assert.Equal(t, []string{s.mario.Name, s.luigi.Name}, names(reply.Cards))
	assert.Equal(t, "View full menu", reply.QuickReplies[0].Text)
}

func TestRespond_PopularWithoutCuisine(t *testing.T) {
	a, s := newAssistant(t)

	reply, err := a.Respond(context.Background(), "find me a restaurant", nil)
	require.NoError(t, err)

	require.Len(t, reply.Cards, 3)
	assert.Equal(t, s.taco.Name, reply.Cards[0].Name)
}

func TestRespond_InvalidLocationRejects(t *testing.T) {
	a, _ := newAssistant(t)

	reply, err := a.Respond(context.Background(), "Restaurants in Ahmedabad", nil)
	require.NoError(t, err)

	assert.Equal(t, composer.KindText, reply.MessageType)
	assert.Empty(t, reply.Cards)
	assert.Contains(t, reply.Content, "Ahmedabad")
	assert.Contains(t, reply.Content, "New York")
	assert.Equal(t, "New York restaurants", reply.QuickReplies[0].Text)
}

func TestRespond_LocationFromHistory(t *testing.T) {
	a, _ := newAssistant(t)
	history := []slots.Turn{
		{Role: slots.RoleUser, Text: "I live in Mumbai"},
		{Role: slots.RoleBot, Text: "Sorry, we don't serve Mumbai yet. Try New York instead?"},
	}

	reply, err := a.Respond(context.Background(), "find a restaurant", history)
	require.NoError(t, err)
	assert.Equal(t, composer.KindText, reply.MessageType)
	assert.Contains(t, reply.Content, "Mumbai")

	// the most recent statement wins
	reply, err = a.Respond(context.Background(), "ok, New York then. find a restaurant", history)
	require.NoError(t, err)
	assert.Equal(t, composer.KindCard, reply.MessageType)
}

func TestRespond_General(t *testing.T) {
	a, _ := newAssistant(t)

	reply, err := a.Respond(context.Background(), "help", nil)
	require.NoError(t, err)
	assert.Equal(t, composer.KindText, reply.MessageType)
	assert.Contains(t, reply.Content, "Table reservations")
	assert.Len(t, reply.QuickReplies, 4)
}

func TestRespond_CardActions(t *testing.T) {
	a, s := newAssistant(t)
	ctx := context.Background()

	reply, err := a.Respond(ctx, fmt.Sprintf("menu_%d", s.mario.Id), nil)
	require.NoError(t, err)
	assert.Equal(t, composer.KindMenu, reply.MessageType)
	require.NotNil(t, reply.Menu)
	assert.Equal(t, "pizza", reply.Menu.Categories[0].Name)

	reply, err = a.Respond(ctx, fmt.Sprintf("book_%d", s.dragon.Id), nil)
	require.NoError(t, err)
	assert.Equal(t, composer.KindCard, reply.MessageType)
	assert.Equal(t, []string{s.dragon.Name}, names(reply.Cards))

	reply, err = a.Respond(ctx, fmt.Sprintf("directions_%d", s.burger.Id), nil)
	require.NoError(t, err)
	assert.Equal(t, composer.KindText, reply.MessageType)
	assert.Contains(t, reply.Content, "Burger Junction")

	reply, err = a.Respond(ctx, "menu_999", nil)
	require.NoError(t, err)
	assert.Equal(t, composer.KindText, reply.MessageType)
	assert.Empty(t, reply.Cards)
}

type stubPhraser struct {
	out   string
	err   error
	calls []string
}

func (p *stubPhraser) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.calls = append(p.calls, history[len(history)-1].Content)
	return p.out, p.err
}

func (p *stubPhraser) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestRespond_PhraserRewritesCardText(t *testing.T) {
	p := &stubPhraser{out: "  Great picks for four tonight!  "}
	a, _ := newAssistant(t, WithPhraser(p))

	reply, err := a.Respond(context.Background(), "Book a table for 4 tonight", nil)
	require.NoError(t, err)

	assert.Equal(t, "Great picks for four tonight!", reply.Content)
	require.Len(t, p.calls, 1)
	assert.Contains(t, p.calls[0], "Intent: booking")
	assert.Contains(t, p.calls[0], "party=4")
}

func TestRespond_PhraserFailureKeepsComposedText(t *testing.T) {
	p := &stubPhraser{err: errors.New("rate limited")}
	a, _ := newAssistant(t, WithPhraser(p))

	reply, err := a.Respond(context.Background(), "Book a table for 4 tonight", nil)
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "4 people tonight")
}

func TestRespond_PhraserSkippedForRejections(t *testing.T) {
	p := &stubPhraser{out: "should not be used"}
	a, _ := newAssistant(t, WithPhraser(p))

	_, err := a.Respond(context.Background(), "table in Delhi", nil)
	require.NoError(t, err)
	assert.Empty(t, p.calls)
}

type failingCatalog struct{ Catalog }

func (failingCatalog) Popular(context.Context) (iter.Seq[catalog.RestaurantCard], error) {
	return nil, errors.New("connection refused")
}

func TestRespond_CatalogFailureIsReturned(t *testing.T) {
	a := NewAssistant(failingCatalog{}, composer.New())

	_, err := a.Respond(context.Background(), "find a restaurant", nil)
	assert.Error(t, err)
}
