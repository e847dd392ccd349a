package unitofwork

import (
	"context"

	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type gormFactory struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &gormFactory{db: db}
}

// NewUnitOfWork is cheap; callers create one per operation.
func (f *gormFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return gormUnitOfWork{db: f.db.WithContext(ctx)}
}

func (f *gormFactory) Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormUnitOfWork{db: tx})
	})
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func (u gormUnitOfWork) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.db)
}

func (u gormUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(u.db)
}

func (u gormUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.db)
}

func (u gormUnitOfWork) RestaurantRepository() contract.RestaurantRepository {
	return implementation.NewRestaurantRepository(u.db)
}

func (u gormUnitOfWork) DishRepository() contract.DishRepository {
	return implementation.NewDishRepository(u.db)
}

func (u gormUnitOfWork) AvailabilityRepository() contract.AvailabilityRepository {
	return implementation.NewAvailabilityRepository(u.db)
}
