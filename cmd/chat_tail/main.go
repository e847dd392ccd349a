package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"dinedesk-be/internal/config"
	"dinedesk-be/pkg/events"
	pktNats "dinedesk-be/pkg/nats"

	"github.com/fatih/color"
)

// chat_tail prints chat events from the CHAT stream as they arrive.
func main() {
	cfg := config.Load()
	url := cfg.App.NatsURL
	if url == "" {
		url = "nats://localhost:4222"
	}

	sub, err := pktNats.Dial(context.Background(), url)
	if err != nil {
		color.Red("Failed to connect to NATS: %v", err)
		os.Exit(1)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	subject := pktNats.AllChatEvents
	if len(os.Args) > 1 {
		subject = os.Args[1]
	}
	if err := sub.Tail(ctx, subject, printEvent); err != nil {
		color.Red("Failed to subscribe: %v", err)
		os.Exit(1)
	}

	color.Cyan("Listening on %s (%s), Ctrl+C to stop\n", subject, url)
	<-ctx.Done()
}

func printEvent(_ context.Context, event events.Event) error {
	label := color.New(color.FgYellow, color.Bold)
	switch event.Type {
	case events.ChatSessionCreated:
		label = color.New(color.FgGreen, color.Bold)
	case events.ChatSessionDeleted:
		label = color.New(color.FgRed, color.Bold)
	}

	payload := event.Data
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = fmt.Sprintf("%s=%v", k, payload[k])
	}

	fmt.Printf("%s %s %s\n",
		color.HiBlackString(event.OccurredAt.Format("15:04:05")),
		label.Sprint(event.Type),
		strings.Join(fields, " "),
	)
	return nil
}
