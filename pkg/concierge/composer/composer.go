// Package composer turns intent, slots and catalog results into a BotReply.
package composer

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/intent"
	"dinedesk-be/pkg/concierge/slots"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxCards is how many cards one reply carries.
const MaxCards = 3

const (
	defaultPartySize = 2
	defaultTime      = "tonight"
)

var (
	bookingReplies = []QuickReply{
		{Text: "Book a table", Action: "booking"},
		{Text: "See more restaurants", Action: "more_restaurants"},
		{Text: "Different time", Action: "change_time"},
	}
	menuReplies = []QuickReply{
		{Text: "View full menu", Action: "full_menu"},
		{Text: "Order now", Action: "order"},
		{Text: "See reviews", Action: "reviews"},
	}
	searchReplies = []QuickReply{
		{Text: "Book a table", Action: "booking"},
		{Text: "Order delivery", Action: "delivery"},
		{Text: "See more options", Action: "more_options"},
	}
	generalReplies = []QuickReply{
		{Text: "Find restaurants", Action: "search"},
		{Text: "Book a table", Action: "booking"},
		{Text: "Order food", Action: "order"},
		{Text: "Get help", Action: "help"},
	}
	rejectReplies = []QuickReply{
		{Text: "New York restaurants", Action: "new_york"},
		{Text: "Browse all", Action: "browse"},
	}
)

// QuickReplies returns a fresh copy of the quick replies for an intent.
func QuickReplies(i intent.Intent) []QuickReply {
	var src []QuickReply
	switch i {
	case intent.Booking:
		src = bookingReplies
	case intent.Menu:
		src = menuReplies
	case intent.Search:
		src = searchReplies
	default:
		src = generalReplies
	}
	return append([]QuickReply(nil), src...)
}

const helpText = `I'm your restaurant assistant! Here's what I can help you with:

- Table reservations: find and book tables at restaurants
- Menu browsing: explore menus and popular dishes
- Food delivery: order food for delivery
- Restaurant search: find restaurants by cuisine or location

Just tell me what you're looking for, like:
- "Book a table for 4 tonight"
- "Show me Italian restaurants nearby"
- "What's popular at Mario's?"

How can I assist you today?`

const (
	generalText  = "I'm here to help with all your restaurant needs. Are you looking to book a table, order food, or browse menus?"
	noResultText = "I couldn't find any restaurants matching that right now. Want to try a different cuisine or time?"
)

type Composer struct {
	now   func() time.Time
	newId func() string
}

type Option func(*Composer)

func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

func WithIdGenerator(newId func() string) Option {
	return func(c *Composer) { c.newId = newId }
}

func New(opts ...Option) *Composer {
	c := &Composer{
		now:   time.Now,
		newId: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Casers are stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func (c *Composer) reply(kind Kind, content string, quick []QuickReply) BotReply {
	return BotReply{
		Id:           c.newId(),
		Type:         "bot",
		Content:      content,
		Timestamp:    c.now().UTC(),
		MessageType:  kind,
		QuickReplies: quick,
	}
}

// Compose builds the reply for a catalog-backed intent. It pulls at most
// MaxCards cards from the sequence. An invalid location always produces
// the rejection reply, and General ignores the cards.
func (c *Composer) Compose(i intent.Intent, s slots.Slots, cards iter.Seq[catalog.RestaurantCard]) BotReply {
	if !intent.RequiresCatalog(i) {
		return c.General("")
	}
	if s.Location.Status == slots.LocationInvalid {
		return c.Reject(s)
	}

	picked := take(cards, MaxCards)
	if len(picked) == 0 {
		return c.reply(KindText, noResultText, QuickReplies(intent.General))
	}

	r := c.reply(KindCard, c.cardText(i, s), QuickReplies(i))
	r.Cards = picked
	return r
}

func take(seq iter.Seq[catalog.RestaurantCard], n int) []catalog.RestaurantCard {
	if seq == nil {
		return nil
	}
	out := make([]catalog.RestaurantCard, 0, n)
	for card := range seq {
		out = append(out, card)
		if len(out) == n {
			break
		}
	}
	return out
}

func (c *Composer) cardText(i intent.Intent, s slots.Slots) string {
	switch i {
	case intent.Booking:
		party := s.PartySize
		if party == 0 {
			party = defaultPartySize
		}
		when := s.Time
		if when == "" {
			when = defaultTime
		}
		return fmt.Sprintf("I'd be happy to help you book a table for %d people %s! Here are some great restaurants with availability:", party, when)
	case intent.Menu:
		if s.Cuisine != "" {
			return fmt.Sprintf("Here are some great %s restaurants with their popular dishes:", titleCase(s.Cuisine))
		}
		return "Here are some popular restaurants and their signature dishes:"
	default:
		if s.Cuisine != "" {
			return fmt.Sprintf("I found some excellent %s restaurants for you:", titleCase(s.Cuisine))
		}
		return "Here are some top-rated restaurants you might like:"
	}
}

// Reject tells the user we do not serve their area and offers New York.
func (c *Composer) Reject(s slots.Slots) BotReply {
	area := "that area"
	if s.Location.City != "" {
		area = titleCase(s.Location.City)
	}
	return c.reply(KindText,
		fmt.Sprintf("Sorry, we don't serve %s yet. Try New York instead?", area),
		append([]QuickReply(nil), rejectReplies...))
}

func (c *Composer) Menu(menu *catalog.Menu) BotReply {
	r := c.reply(KindMenu, fmt.Sprintf("Here's the menu for %s:", menu.RestaurantName), QuickReplies(intent.Booking))
	r.Menu = menu
	return r
}

// Booking answers a "book_<id>" card action with that restaurant's card.
func (c *Composer) Booking(card catalog.RestaurantCard) BotReply {
	r := c.reply(KindCard,
		fmt.Sprintf("Great choice! Pick a time at %s and I'll note it for you:", card.Name),
		QuickReplies(intent.Booking))
	r.Cards = []catalog.RestaurantCard{card}
	return r
}

// Directions answers a "directions_<id>" card action.
func (c *Composer) Directions(card catalog.RestaurantCard, address string) BotReply {
	content := fmt.Sprintf("%s is %s away.", card.Name, card.Distance)
	if address = strings.TrimSpace(address); address != "" {
		content = fmt.Sprintf("%s is at %s, %s away.", card.Name, address, card.Distance)
	}
	return c.reply(KindText, content, QuickReplies(intent.Search))
}

// General answers chit-chat: the help text when asked, else a short prompt.
func (c *Composer) General(message string) BotReply {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return c.reply(KindText, helpText, QuickReplies(intent.General))
	}
	return c.reply(KindText, generalText, QuickReplies(intent.General))
}
