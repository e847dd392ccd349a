// Package intent classifies a chat message into one of four intents using
// fixed keyword sets.
package intent

import (
	"strconv"
	"strings"
)

type Intent string

const (
	Booking Intent = "booking"
	Search  Intent = "search"
	Menu    Intent = "menu"
	General Intent = "general"
)

type keywordSet struct {
	intent   Intent
	keywords []string
}

// Checked in order; the first set with a hit wins.
var keywordSets = []keywordSet{
	{Booking, []string{"book", "table", "reservation", "reserve", "seat"}},
	{Search, []string{"restaurant", "find", "search", "near", "cuisine"}},
	{Menu, []string{"menu", "food", "dish", "order", "popular", "recommend"}},
}

// Classify never fails; anything without a keyword hit is General.
// Matching is substring based, so "booking" and "tables" count too.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, set := range keywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.intent
			}
		}
	}
	return General
}

// RequiresCatalog reports whether answering the intent needs restaurant data.
func RequiresCatalog(i Intent) bool {
	return i == Booking || i == Search || i == Menu
}

type ActionKind string

const (
	ActionBook       ActionKind = "book"
	ActionMenu       ActionKind = "menu"
	ActionDirections ActionKind = "directions"
)

// Action is a card button echoed back by the client, e.g. "book_12".
type Action struct {
	Kind         ActionKind
	RestaurantId uint
}

// ParseAction recognises the card action tokens. Anything else, including
// tokens with a non-numeric id, is not an action.
func ParseAction(message string) (Action, bool) {
	token := strings.TrimSpace(message)
	prefix, rawId, ok := strings.Cut(token, "_")
	if !ok {
		return Action{}, false
	}

	kind := ActionKind(prefix)
	switch kind {
	case ActionBook, ActionMenu, ActionDirections:
	default:
		return Action{}, false
	}

	id, err := strconv.ParseUint(rawId, 10, 64)
	if err != nil || id == 0 {
		return Action{}, false
	}
	return Action{Kind: kind, RestaurantId: uint(id)}, true
}
