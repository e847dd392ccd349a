package composer

import (
	"time"

	"dinedesk-be/pkg/concierge/catalog"
)

type Kind string

const (
	KindText Kind = "text"
	KindCard Kind = "card"
	KindMenu Kind = "menu"
)

type QuickReply struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// BotReply is what the client renders for one assistant turn.
type BotReply struct {
	Id           string                   `json:"id"`
	Type         string                   `json:"type"`
	Content      string                   `json:"content"`
	Timestamp    time.Time                `json:"timestamp"`
	MessageType  Kind                     `json:"message_type"`
	Cards        []catalog.RestaurantCard `json:"cards,omitempty"`
	QuickReplies []QuickReply             `json:"quick_replies"`
	Menu         *catalog.Menu            `json:"menu,omitempty"`
}

// Attachments is the part of a reply stored next to the message text.
type Attachments struct {
	MessageType  Kind                     `json:"message_type"`
	Cards        []catalog.RestaurantCard `json:"cards,omitempty"`
	QuickReplies []QuickReply             `json:"quick_replies,omitempty"`
	Menu         *catalog.Menu            `json:"menu,omitempty"`
}

func (r *BotReply) Attachments() Attachments {
	return Attachments{
		MessageType:  r.MessageType,
		Cards:        r.Cards,
		QuickReplies: r.QuickReplies,
		Menu:         r.Menu,
	}
}
