// Package concierge wires intent classification, slot extraction, the
// restaurant catalog and the reply composer into one chat turn.
package concierge

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"dinedesk-be/internal/constant"
	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/composer"
	"dinedesk-be/pkg/concierge/intent"
	"dinedesk-be/pkg/concierge/slots"
	"dinedesk-be/pkg/llm"
	"dinedesk-be/pkg/metrics"
)

// Catalog is the part of the restaurant catalog a chat turn reads.
type Catalog interface {
	ForBooking(ctx context.Context) (iter.Seq[catalog.RestaurantCard], error)
	ByCuisine(ctx context.Context, cuisine string) (iter.Seq[catalog.RestaurantCard], error)
	Popular(ctx context.Context) (iter.Seq[catalog.RestaurantCard], error)
	Menu(ctx context.Context, restaurantId uint) (*catalog.Menu, error)
	Card(ctx context.Context, restaurantId uint) (catalog.RestaurantCard, *entity.Restaurant, error)
}

type Assistant struct {
	catalog  Catalog
	composer *composer.Composer
	phraser  llm.LLMProvider
	logger   logger.ILogger
}

type Option func(*Assistant)

// WithPhraser lets an LLM reword the text of card replies.
func WithPhraser(p llm.LLMProvider) Option {
	return func(a *Assistant) { a.phraser = p }
}

func WithLogger(l logger.ILogger) Option {
	return func(a *Assistant) { a.logger = l }
}

func NewAssistant(cat Catalog, comp *composer.Composer, opts ...Option) *Assistant {
	a := &Assistant{
		catalog:  cat,
		composer: comp,
		logger:   logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Respond answers one user message. history holds the earlier turns of the
// session, oldest first, without the message itself.
func (a *Assistant) Respond(ctx context.Context, message string, history []slots.Turn) (*composer.BotReply, error) {
	if action, ok := intent.ParseAction(message); ok {
		reply, err := a.respondToAction(ctx, action)
		if err != nil {
			return nil, err
		}
		return a.done(reply), nil
	}

	i := intent.Classify(message)
	metrics.IntentsTotal.WithLabelValues(string(i)).Inc()

	if !intent.RequiresCatalog(i) {
		reply := a.composer.General(message)
		return a.done(reply), nil
	}

	turns := append(append(make([]slots.Turn, 0, len(history)+1), history...), slots.Turn{Role: slots.RoleUser, Text: message})
	s := slots.Extract(turns)

	if s.Location.Status == slots.LocationInvalid {
		metrics.RejectionsTotal.WithLabelValues(s.Location.City).Inc()
		reply := a.composer.Reject(s)
		return a.done(reply), nil
	}

	cards, err := a.lookup(ctx, i, s)
	if err != nil {
		return nil, err
	}

	reply := a.composer.Compose(i, s, cards)
	if reply.MessageType == composer.KindCard {
		reply.Content = a.phrase(ctx, message, i, turns, reply.Content)
	}
	return a.done(reply), nil
}

func (a *Assistant) lookup(ctx context.Context, i intent.Intent, s slots.Slots) (iter.Seq[catalog.RestaurantCard], error) {
	switch {
	case i == intent.Booking:
		return a.catalog.ForBooking(ctx)
	case s.Cuisine != "":
		return a.catalog.ByCuisine(ctx, s.Cuisine)
	default:
		return a.catalog.Popular(ctx)
	}
}

func (a *Assistant) respondToAction(ctx context.Context, action intent.Action) (composer.BotReply, error) {
	metrics.IntentsTotal.WithLabelValues("action_" + string(action.Kind)).Inc()

	if action.Kind == intent.ActionMenu {
		menu, err := a.catalog.Menu(ctx, action.RestaurantId)
		if apperror.IsNotFound(err) {
			return a.composer.Compose(intent.Menu, slots.Slots{}, noCards), nil
		}
		if err != nil {
			return composer.BotReply{}, err
		}
		return a.composer.Menu(menu), nil
	}

	card, restaurant, err := a.catalog.Card(ctx, action.RestaurantId)
	if apperror.IsNotFound(err) {
		return a.composer.Compose(intent.Search, slots.Slots{}, noCards), nil
	}
	if err != nil {
		return composer.BotReply{}, err
	}
	if action.Kind == intent.ActionDirections {
		return a.composer.Directions(card, restaurant.Address), nil
	}
	return a.composer.Booking(card), nil
}

func noCards(func(catalog.RestaurantCard) bool) {}

// phrase asks the LLM for a one-line lead-in. Any failure keeps the composed text.
func (a *Assistant) phrase(ctx context.Context, message string, i intent.Intent, turns []slots.Turn, fallback string) string {
	if a.phraser == nil {
		return fallback
	}

	prompt := fmt.Sprintf(constant.PhraserUserPromptTemplate, message, i, slots.ContextLine(turns))
	out, err := a.phraser.Chat(ctx,
		[]llm.Message{
			{Role: llm.RoleSystem, Content: constant.PhraserSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(50),
		llm.WithTopP(0.9),
	)
	if err != nil {
		metrics.PhraserFailuresTotal.Inc()
		a.logger.Warn("Assistant", "Phrasing failed, keeping composed text", map[string]interface{}{
			"intent": string(i),
			"error":  err.Error(),
		})
		return fallback
	}
	if out = strings.TrimSpace(out); out == "" {
		return fallback
	}
	return out
}

func (a *Assistant) done(reply composer.BotReply) *composer.BotReply {
	metrics.RepliesTotal.WithLabelValues(string(reply.MessageType)).Inc()
	return &reply
}
