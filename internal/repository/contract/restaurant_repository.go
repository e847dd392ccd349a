package contract

import (
	"context"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/repository/specification"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error)
	DistinctCuisines(ctx context.Context, specs ...specification.Specification) ([]string, error)
}

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dish, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AvailabilitySlot, error)
}
