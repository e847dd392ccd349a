package contract

import (
	"context"

	"github.com/google/uuid"
)

// ActiveChatRepository remembers which chat session each user is currently in.
type ActiveChatRepository interface {
	Get(ctx context.Context, userId uuid.UUID) (uuid.UUID, bool, error)
	Set(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	Clear(ctx context.Context, userId uuid.UUID) error
}
