package catalog

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/repository/specification"
	"dinedesk-be/internal/repository/unitofwork"
)

const (
	defaultRating     = 4.0
	defaultPriceLevel = "$$"
	defaultDistance   = "1.0 miles"
)

var errMissingName = errors.New("restaurant has no name")

// cards formats lazily: availability is looked up as each card is pulled.
// Ranging over the result again repeats the lookups.
func (c *Catalog) cards(ctx context.Context, uow unitofwork.UnitOfWork, restaurants []*entity.Restaurant) iter.Seq[RestaurantCard] {
	return func(yield func(RestaurantCard) bool) {
		for _, r := range restaurants {
			card, err := c.card(ctx, uow, r)
			if err != nil {
				c.logger.Debug("Catalog", "Skipping restaurant card", map[string]interface{}{
					"restaurant_id": r.Id,
					"error":         err.Error(),
				})
				continue
			}
			if !yield(card) {
				return
			}
		}
	}
}

func (c *Catalog) card(ctx context.Context, uow unitofwork.UnitOfWork, r *entity.Restaurant) (RestaurantCard, error) {
	if strings.TrimSpace(r.Name) == "" {
		return RestaurantCard{}, errMissingName
	}

	availability, err := c.availability(ctx, uow, r.Id)
	if err != nil {
		return RestaurantCard{}, err
	}

	card := RestaurantCard{
		Type:         "restaurant",
		Id:           fmt.Sprintf("rest_%d", r.Id),
		Name:         r.Name,
		Image:        r.ImageURL,
		Rating:       r.Rating,
		PriceLevel:   r.PriceLevel,
		Distance:     r.Distance,
		Description:  r.Description,
		Cuisine:      r.Cuisine,
		Availability: availability,
		Actions: []CardAction{
			{Text: "Book Table", Action: fmt.Sprintf("book_%d", r.Id)},
			{Text: "View Menu", Action: fmt.Sprintf("menu_%d", r.Id)},
			{Text: "Get Directions", Action: fmt.Sprintf("directions_%d", r.Id)},
		},
	}
	if card.Rating == 0 {
		card.Rating = defaultRating
	}
	if card.PriceLevel == "" {
		card.PriceLevel = defaultPriceLevel
	}
	if card.Distance == "" {
		card.Distance = defaultDistance
	}
	return card, nil
}

// availability returns up to SlotLimit stored open slots for today, or a
// synthesized evening list when nothing is stored.
func (c *Catalog) availability(ctx context.Context, uow unitofwork.UnitOfWork, restaurantId uint) ([]Availability, error) {
	slots, err := uow.AvailabilityRepository().FindAll(ctx,
		specification.ByRestaurantID{RestaurantID: restaurantId},
		specification.OnDate{Date: today(c.now())},
		specification.AvailableOnly{},
		specification.Ascending("id"),
		specification.Limit(SlotLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("availability for restaurant %d: %w", restaurantId, err)
	}

	if len(slots) > 0 {
		out := make([]Availability, len(slots))
		for i, s := range slots {
			out[i] = Availability{Time: s.TimeSlot, Available: s.IsAvailable}
		}
		return out, nil
	}

	out := make([]Availability, len(defaultSlotTimes))
	for i, t := range defaultSlotTimes {
		out[i] = Availability{Time: t, Available: c.roll() > defaultSlotThreshold}
	}
	return out, nil
}

// today is the UTC calendar day; slots are stored against UTC dates.
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
