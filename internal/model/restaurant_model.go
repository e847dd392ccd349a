package model

import (
	"time"

	"gorm.io/datatypes"
)

type Restaurant struct {
	Id              uint                        `gorm:"primaryKey"`
	Name            string                      `gorm:"type:varchar(255);not null"`
	Address         string                      `gorm:"type:text"`
	City            string                      `gorm:"type:varchar(100);index"`
	State           string                      `gorm:"type:varchar(50)"`
	Phone           string                      `gorm:"type:varchar(30)"`
	Cuisine         string                      `gorm:"type:varchar(50);index"`
	CuisineTypes    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	PriceLevel      string                      `gorm:"type:varchar(4)"`
	Rating          float64                     `gorm:"index"`
	ServicesOffered datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsActive        bool                        `gorm:"not null;index"`
	Description     string                      `gorm:"type:text"`
	ImageURL        string                      `gorm:"type:text"`
	Distance        string                      `gorm:"type:varchar(30)"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime"`
	Dishes          []Dish                      `gorm:"foreignKey:RestaurantId;constraint:OnDelete:CASCADE"`
	Slots           []AvailabilitySlot          `gorm:"foreignKey:RestaurantId;constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type Dish struct {
	Id           uint                        `gorm:"primaryKey"`
	RestaurantId uint                        `gorm:"not null;index"`
	Name         string                      `gorm:"type:varchar(255);not null"`
	Description  string                      `gorm:"type:text"`
	Price        float64                     `gorm:"not null"`
	Category     string                      `gorm:"type:varchar(50)"`
	DietaryTags  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ImageURL     string                      `gorm:"type:text"`
	IsAvailable  bool                        `gorm:"not null"`
	IsPopular    bool                        `gorm:"not null"`
}

func (Dish) TableName() string {
	return "dishes"
}

type AvailabilitySlot struct {
	Id           uint           `gorm:"primaryKey"`
	RestaurantId uint           `gorm:"not null;index:idx_slot_restaurant_date"`
	TimeSlot     string         `gorm:"type:varchar(20);not null"`
	Date         datatypes.Date `gorm:"not null;index:idx_slot_restaurant_date"`
	IsAvailable  bool           `gorm:"not null"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
