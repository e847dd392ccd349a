package memory

import (
	"context"
	"time"

	"dinedesk-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type ActiveChatRepository struct {
	cache *cache.Cache
}

// NewActiveChatRepository keeps the pointer for ttl after the last write,
// purging expired entries every 10 minutes.
func NewActiveChatRepository(ttl time.Duration) contract.ActiveChatRepository {
	return &ActiveChatRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *ActiveChatRepository) Get(_ context.Context, userId uuid.UUID) (uuid.UUID, bool, error) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(uuid.UUID), true, nil
	}
	return uuid.Nil, false, nil
}

func (r *ActiveChatRepository) Set(_ context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	r.cache.Set(userId.String(), sessionId, cache.DefaultExpiration)
	return nil
}

func (r *ActiveChatRepository) Clear(_ context.Context, userId uuid.UUID) error {
	r.cache.Delete(userId.String())
	return nil
}
