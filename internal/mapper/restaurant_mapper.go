package mapper

import (
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/model"

	"gorm.io/datatypes"
)

type RestaurantMapper struct{}

func NewRestaurantMapper() *RestaurantMapper {
	return &RestaurantMapper{}
}

func (m *RestaurantMapper) RestaurantToEntity(r *model.Restaurant) *entity.Restaurant {
	if r == nil {
		return nil
	}
	return &entity.Restaurant{
		Id:              r.Id,
		Name:            r.Name,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Phone:           r.Phone,
		Cuisine:         r.Cuisine,
		CuisineTypes:    []string(r.CuisineTypes),
		PriceLevel:      r.PriceLevel,
		Rating:          r.Rating,
		ServicesOffered: []string(r.ServicesOffered),
		IsActive:        r.IsActive,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Distance:        r.Distance,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RestaurantMapper) RestaurantToModel(r *entity.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}
	return &model.Restaurant{
		Id:              r.Id,
		Name:            r.Name,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Phone:           r.Phone,
		Cuisine:         r.Cuisine,
		CuisineTypes:    datatypes.NewJSONSlice(r.CuisineTypes),
		PriceLevel:      r.PriceLevel,
		Rating:          r.Rating,
		ServicesOffered: datatypes.NewJSONSlice(r.ServicesOffered),
		IsActive:        r.IsActive,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Distance:        r.Distance,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RestaurantMapper) DishToEntity(d *model.Dish) *entity.Dish {
	if d == nil {
		return nil
	}
	return &entity.Dish{
		Id:           d.Id,
		RestaurantId: d.RestaurantId,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		DietaryTags:  []string(d.DietaryTags),
		ImageURL:     d.ImageURL,
		IsAvailable:  d.IsAvailable,
		IsPopular:    d.IsPopular,
	}
}

func (m *RestaurantMapper) DishToModel(d *entity.Dish) *model.Dish {
	if d == nil {
		return nil
	}
	return &model.Dish{
		Id:           d.Id,
		RestaurantId: d.RestaurantId,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		DietaryTags:  datatypes.NewJSONSlice(d.DietaryTags),
		ImageURL:     d.ImageURL,
		IsAvailable:  d.IsAvailable,
		IsPopular:    d.IsPopular,
	}
}

func (m *RestaurantMapper) SlotToEntity(s *model.AvailabilitySlot) *entity.AvailabilitySlot {
	if s == nil {
		return nil
	}
	return &entity.AvailabilitySlot{
		Id:           s.Id,
		RestaurantId: s.RestaurantId,
		TimeSlot:     s.TimeSlot,
		Date:         time.Time(s.Date),
		IsAvailable:  s.IsAvailable,
	}
}

func (m *RestaurantMapper) SlotToModel(s *entity.AvailabilitySlot) *model.AvailabilitySlot {
	if s == nil {
		return nil
	}
	return &model.AvailabilitySlot{
		Id:           s.Id,
		RestaurantId: s.RestaurantId,
		TimeSlot:     s.TimeSlot,
		Date:         datatypes.Date(s.Date),
		IsAvailable:  s.IsAvailable,
	}
}
