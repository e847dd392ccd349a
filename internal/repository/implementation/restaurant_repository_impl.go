package implementation

import (
	"context"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/mapper"
	"dinedesk-be/internal/model"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RestaurantRepositoryImpl struct {
	store gormStore[entity.Restaurant, model.Restaurant]
}

func NewRestaurantRepository(db *gorm.DB) contract.RestaurantRepository {
	m := mapper.NewRestaurantMapper()
	return &RestaurantRepositoryImpl{store: newGormStore(db, m.RestaurantToEntity, m.RestaurantToModel)}
}

// Create stores the restaurant row only; dishes and slots have their own
// repositories.
func (r *RestaurantRepositoryImpl) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.store.create(ctx, restaurant, "Dishes", "Slots")
}

func (r *RestaurantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	return r.store.findOne(ctx, specs...)
}

func (r *RestaurantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	return r.store.findAll(ctx, specs...)
}

func (r *RestaurantRepositoryImpl) DistinctCuisines(ctx context.Context, specs ...specification.Specification) ([]string, error) {
	var cuisines []string
	err := r.store.query(ctx, specs...).
		Distinct("cuisine").
		Order("cuisine ASC").
		Pluck("cuisine", &cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

type DishRepositoryImpl struct {
	store gormStore[entity.Dish, model.Dish]
}

func NewDishRepository(db *gorm.DB) contract.DishRepository {
	m := mapper.NewRestaurantMapper()
	return &DishRepositoryImpl{store: newGormStore(db, m.DishToEntity, m.DishToModel)}
}

func (r *DishRepositoryImpl) Create(ctx context.Context, dish *entity.Dish) error {
	return r.store.create(ctx, dish)
}

func (r *DishRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Dish, error) {
	return r.store.findAll(ctx, specs...)
}

type AvailabilityRepositoryImpl struct {
	store gormStore[entity.AvailabilitySlot, model.AvailabilitySlot]
}

func NewAvailabilityRepository(db *gorm.DB) contract.AvailabilityRepository {
	m := mapper.NewRestaurantMapper()
	return &AvailabilityRepositoryImpl{store: newGormStore(db, m.SlotToEntity, m.SlotToModel)}
}

func (r *AvailabilityRepositoryImpl) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	return r.store.create(ctx, slot)
}

func (r *AvailabilityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AvailabilitySlot, error) {
	return r.store.findAll(ctx, specs...)
}
