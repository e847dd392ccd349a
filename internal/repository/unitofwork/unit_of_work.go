package unitofwork

import (
	"context"

	"dinedesk-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one connection or transaction.
type UnitOfWork interface {
	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	RestaurantRepository() contract.RestaurantRepository
	DishRepository() contract.DishRepository
	AvailabilityRepository() contract.AvailabilityRepository
}

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
	// Transaction runs fn inside one database transaction. A returned error
	// or a panic rolls everything back.
	Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error
}
