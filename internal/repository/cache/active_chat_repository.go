package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinedesk-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dinedesk:active_chat:"

// ActiveChatRepository stores the active chat pointer in Redis so that it
// survives restarts and is shared between instances.
type ActiveChatRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewActiveChatRepository(client *redis.Client, ttl time.Duration) contract.ActiveChatRepository {
	return &ActiveChatRepository{client: client, ttl: ttl}
}

func key(userId uuid.UUID) string {
	return keyPrefix + userId.String()
}

func (r *ActiveChatRepository) Get(ctx context.Context, userId uuid.UUID) (uuid.UUID, bool, error) {
	val, err := r.client.Get(ctx, key(userId)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("redis get active chat: %w", err)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		// A corrupt pointer is treated as absent; the caller starts a new chat.
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

func (r *ActiveChatRepository) Set(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	if err := r.client.Set(ctx, key(userId), sessionId.String(), r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set active chat: %w", err)
	}
	return nil
}

func (r *ActiveChatRepository) Clear(ctx context.Context, userId uuid.UUID) error {
	if err := r.client.Del(ctx, key(userId)).Err(); err != nil {
		return fmt.Errorf("redis clear active chat: %w", err)
	}
	return nil
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
