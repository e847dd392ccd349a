// Package events describes what the chat store announces on the bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Subjects. Every chat event lives under "chat.".
const (
	ChatSessionCreated  = "chat.session_created"
	ChatMessageAppended = "chat.message_appended"
	ChatSessionDeleted  = "chat.session_deleted"
)

// Event is one bus message. Type doubles as the subject and is not part of
// the encoded body.
type Event struct {
	Type       string                 `json:"-"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// Decode rebuilds an event read from subject.
func Decode(subject string, body []byte) (Event, error) {
	e := Event{Type: subject}
	if err := json.Unmarshal(body, &e); err != nil {
		return Event{}, fmt.Errorf("decode %s: %w", subject, err)
	}
	if e.Data == nil {
		e.Data = map[string]interface{}{}
	}
	return e, nil
}

// Publisher is satisfied by the NATS bus and by Nop.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Nop drops every event. Used when no bus is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.Events = append(r.Events, event)
	return nil
}

func (r *Recorder) Types() []string {
	types := make([]string, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}
	return types
}
