package entity

import (
	"slices"
	"time"
)

const (
	ServiceDineIn   = "dine_in"
	ServiceTakeout  = "takeout"
	ServiceDelivery = "delivery"
)

type Restaurant struct {
	Id              uint
	Name            string
	Address         string
	City            string
	State           string
	Phone           string
	Cuisine         string
	CuisineTypes    []string
	PriceLevel      string
	Rating          float64
	ServicesOffered []string
	IsActive        bool
	Description     string
	ImageURL        string
	Distance        string
	CreatedAt       time.Time
}

func (r *Restaurant) Offers(service string) bool {
	return slices.Contains(r.ServicesOffered, service)
}

type Dish struct {
	Id           uint
	RestaurantId uint
	Name         string
	Description  string
	Price        float64
	Category     string
	DietaryTags  []string
	ImageURL     string
	IsAvailable  bool
	IsPopular    bool
}

// AvailabilitySlot is a display hint only; it is never reserved.
type AvailabilitySlot struct {
	Id           uint
	RestaurantId uint
	TimeSlot     string
	Date         time.Time
	IsAvailable  bool
}
