package specification

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActiveRestaurants struct{}

func (s ActiveRestaurants) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByCuisine matches the primary cuisine, case-insensitively.
type ByCuisine struct {
	Cuisine string
}

func (s ByCuisine) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(cuisine) = ?", strings.ToLower(strings.TrimSpace(s.Cuisine)))
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// TextMatch is a case-insensitive substring match on name, description
// or cuisine.
type TextMatch struct {
	Query string
}

func (s TextMatch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s.Query))) + "%"
	return db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(cuisine) LIKE ? ESCAPE '\')`, pattern, pattern, pattern)
}

// MaxPriceLevel keeps restaurants whose price level has at most N dollar signs.
type MaxPriceLevel struct {
	Level int
}

func (s MaxPriceLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LENGTH(price_level) <= ?", s.Level)
}

type MinRating struct {
	Rating float64
}

func (s MinRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating >= ?", s.Rating)
}

type ByRestaurantID struct {
	RestaurantID uint
}

func (s ByRestaurantID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("restaurant_id = ?", s.RestaurantID)
}

type AvailableOnly struct{}

func (s AvailableOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_available = ?", true)
}

// OnDate matches availability slots for a calendar day.
type OnDate struct {
	Date time.Time
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", datatypes.Date(s.Date))
}
