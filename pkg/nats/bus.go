// Package nats carries chat events over a NATS JetStream stream.
package nats

import (
	"context"
	"fmt"
	"time"

	"dinedesk-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName = "CHAT"
	// AllChatEvents matches every subject the stream stores.
	AllChatEvents = "chat.>"

	retention = 7 * 24 * time.Hour
)

// Handler processes one delivered event. An error redelivers it.
type Handler func(ctx context.Context, event events.Event) error

// Bus publishes to and tails the CHAT stream over one connection.
type Bus struct {
	conn     *nats.Conn
	js       jetstream.JetStream
	consumer jetstream.ConsumeContext
}

// Dial connects and creates the CHAT stream when it is missing.
func Dial(ctx context.Context, url string) (*Bus, error) {
	conn, err := nats.Connect(url,
		nats.Name("dinedesk"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", url, err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{AllChatEvents},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    retention,
	}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("stream %s: %w", StreamName, err)
	}

	return &Bus{conn: conn, js: js}, nil
}

// Publish sends event on the subject named by its type.
func (b *Bus) Publish(ctx context.Context, event events.Event) error {
	body, err := event.Encode()
	if err != nil {
		return err
	}
	if _, err := b.js.Publish(ctx, event.Type, body); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Tail feeds new events matching subject to handle until Close. Bodies that
// cannot be decoded are dropped for good.
func (b *Bus) Tail(ctx context.Context, subject string, handle Handler) error {
	consumer, err := b.js.CreateOrUpdateConsumer(ctx, StreamName, jetstream.ConsumerConfig{
		FilterSubject: subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return fmt.Errorf("consumer on %s: %w", subject, err)
	}

	b.consumer, err = consumer.Consume(func(msg jetstream.Msg) {
		event, err := events.Decode(msg.Subject(), msg.Data())
		switch {
		case err != nil:
			_ = msg.Term()
		case handle(ctx, event) != nil:
			_ = msg.Nak()
		default:
			_ = msg.Ack()
		}
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", subject, err)
	}
	return nil
}

func (b *Bus) Close() {
	if b.consumer != nil {
		b.consumer.Stop()
	}
	b.conn.Close()
}
