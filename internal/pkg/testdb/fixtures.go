package testdb

import (
	"context"
	"testing"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/repository/implementation"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Restaurant(t testing.TB, db *gorm.DB, r entity.Restaurant) entity.Restaurant {
	t.Helper()
	require.NoError(t, implementation.NewRestaurantRepository(db).Create(context.Background(), &r))
	return r
}

func Dish(t testing.TB, db *gorm.DB, d entity.Dish) entity.Dish {
	t.Helper()
	require.NoError(t, implementation.NewDishRepository(db).Create(context.Background(), &d))
	return d
}

func Slot(t testing.TB, db *gorm.DB, s entity.AvailabilitySlot) entity.AvailabilitySlot {
	t.Helper()
	require.NoError(t, implementation.NewAvailabilityRepository(db).Create(context.Background(), &s))
	return s
}

// DineIn is a ready-made active restaurant offering every service.
func DineIn(name, cuisine string, rating float64) entity.Restaurant {
	return entity.Restaurant{
		Name:            name,
		City:            "New York",
		Cuisine:         cuisine,
		CuisineTypes:    []string{cuisine},
		PriceLevel:      "$$",
		Rating:          rating,
		ServicesOffered: []string{entity.ServiceDineIn, entity.ServiceTakeout, entity.ServiceDelivery},
		IsActive:        true,
		Description:     name + " serves " + cuisine + " food",
		Distance:        "0.5 miles",
	}
}
