// Package catalog is the read side of the restaurant data used by the chat
// assistant and the public restaurant endpoints.
package catalog

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/pkg/apperror"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/repository/scope"
	"dinedesk-be/internal/repository/specification"
	"dinedesk-be/internal/repository/unitofwork"
)

const (
	BookingLimit = 6
	CuisineLimit = 8
	PopularLimit = 6
	SearchLimit  = 10
	SlotLimit    = 6
)

var defaultSlotTimes = []string{"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM", "8:30 PM"}

// A synthesized slot is shown as available when roll() exceeds this.
const defaultSlotThreshold = 0.3

type Catalog struct {
	repos  unitofwork.RepositoryFactory
	logger logger.ILogger
	now    func() time.Time
	roll   func() float64
}

type Option func(*Catalog)

func WithLogger(l logger.ILogger) Option {
	return func(c *Catalog) { c.logger = l }
}

// WithClock sets the clock used to pick "today" for availability.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithRoll replaces the random source for synthesized slots.
func WithRoll(roll func() float64) Option {
	return func(c *Catalog) { c.roll = roll }
}

func New(repos unitofwork.RepositoryFactory, opts ...Option) *Catalog {
	c := &Catalog{
		repos:  repos,
		logger: logger.NewNopLogger(),
		now:    time.Now,
		roll:   rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForBooking lists active dine-in restaurants with today's availability.
func (c *Catalog) ForBooking(ctx context.Context) (iter.Seq[RestaurantCard], error) {
	uow := c.repos.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx,
		specification.ActiveRestaurants{},
		specification.Scope(scope.OrderByRatingDesc),
	)
	if err != nil {
		return nil, fmt.Errorf("list booking restaurants: %w", err)
	}

	dineIn := make([]*entity.Restaurant, 0, BookingLimit)
	for _, r := range restaurants {
		if r.Offers(entity.ServiceDineIn) {
			dineIn = append(dineIn, r)
		}
		if len(dineIn) == BookingLimit {
			break
		}
	}
	return c.cards(ctx, uow, dineIn), nil
}

// ByCuisine matches the primary cuisine only, case-insensitively.
func (c *Catalog) ByCuisine(ctx context.Context, cuisine string) (iter.Seq[RestaurantCard], error) {
	uow := c.repos.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx,
		specification.ActiveRestaurants{},
		specification.ByCuisine{Cuisine: cuisine},
		specification.Scope(scope.OrderByRatingDesc),
		specification.Limit(CuisineLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("list %s restaurants: %w", cuisine, err)
	}
	return c.cards(ctx, uow, restaurants), nil
}

func (c *Catalog) Popular(ctx context.Context) (iter.Seq[RestaurantCard], error) {
	uow := c.repos.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx,
		specification.ActiveRestaurants{},
		specification.Scope(scope.OrderByRatingDesc),
		specification.Limit(PopularLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("list popular restaurants: %w", err)
	}
	return c.cards(ctx, uow, restaurants), nil
}

func (c *Catalog) Search(ctx context.Context, filter SearchFilter) (iter.Seq[RestaurantCard], error) {
	specs := []specification.Specification{specification.ActiveRestaurants{}}
	if q := strings.TrimSpace(filter.Query); q != "" {
		specs = append(specs, specification.TextMatch{Query: q})
	}
	if filter.Cuisine != "" {
		specs = append(specs, specification.ByCuisine{Cuisine: filter.Cuisine})
	}
	if filter.MaxPrice != "" {
		level, err := priceLevel(filter.MaxPrice)
		if err != nil {
			return nil, err
		}
		specs = append(specs, specification.MaxPriceLevel{Level: level})
	}
	if filter.MinRating > 0 {
		specs = append(specs, specification.MinRating{Rating: filter.MinRating})
	}
	specs = append(specs,
		specification.Scope(scope.OrderByRatingDesc),
		specification.Limit(SearchLimit),
	)

	uow := c.repos.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("search restaurants: %w", err)
	}
	return c.cards(ctx, uow, restaurants), nil
}

func priceLevel(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > 4 || strings.Trim(raw, "$") != "" {
		return 0, apperror.Validation("max_price must be one of $, $$, $$$, $$$$")
	}
	return len(raw), nil
}

// Cuisines returns the distinct primary cuisines of active restaurants, sorted.
func (c *Catalog) Cuisines(ctx context.Context) ([]string, error) {
	uow := c.repos.NewUnitOfWork(ctx)
	cuisines, err := uow.RestaurantRepository().DistinctCuisines(ctx, specification.ActiveRestaurants{})
	if err != nil {
		return nil, fmt.Errorf("list cuisines: %w", err)
	}
	out := make([]string, 0, len(cuisines))
	for _, cu := range cuisines {
		if cu != "" {
			out = append(out, cu)
		}
	}
	return out, nil
}

// Details returns an active restaurant or a NotFoundError.
func (c *Catalog) Details(ctx context.Context, restaurantId uint) (*entity.Restaurant, error) {
	uow := c.repos.NewUnitOfWork(ctx)
	return c.activeRestaurant(ctx, uow, restaurantId)
}

// Card formats one active restaurant, returning the record alongside it.
func (c *Catalog) Card(ctx context.Context, restaurantId uint) (RestaurantCard, *entity.Restaurant, error) {
	uow := c.repos.NewUnitOfWork(ctx)
	restaurant, err := c.activeRestaurant(ctx, uow, restaurantId)
	if err != nil {
		return RestaurantCard{}, nil, err
	}
	card, err := c.card(ctx, uow, restaurant)
	if err != nil {
		return RestaurantCard{}, nil, fmt.Errorf("format restaurant %d: %w", restaurantId, err)
	}
	return card, restaurant, nil
}

func (c *Catalog) activeRestaurant(ctx context.Context, uow unitofwork.UnitOfWork, restaurantId uint) (*entity.Restaurant, error) {
	restaurant, err := uow.RestaurantRepository().FindOne(ctx,
		specification.ByNumericID{ID: restaurantId},
		specification.ActiveRestaurants{},
	)
	if err != nil {
		return nil, fmt.Errorf("find restaurant %d: %w", restaurantId, err)
	}
	if restaurant == nil {
		return nil, apperror.NotFound("restaurant", strconv.FormatUint(uint64(restaurantId), 10))
	}
	return restaurant, nil
}

// Menu groups the available dishes by category. Categories are sorted by
// name; within a category popular dishes come first, then by name.
func (c *Catalog) Menu(ctx context.Context, restaurantId uint) (*Menu, error) {
	uow := c.repos.NewUnitOfWork(ctx)
	restaurant, err := c.activeRestaurant(ctx, uow, restaurantId)
	if err != nil {
		return nil, err
	}

	dishes, err := uow.DishRepository().FindAll(ctx,
		specification.ByRestaurantID{RestaurantID: restaurantId},
		specification.AvailableOnly{},
	)
	if err != nil {
		return nil, fmt.Errorf("list dishes for restaurant %d: %w", restaurantId, err)
	}

	grouped := make(map[string][]MenuItem)
	for _, d := range dishes {
		category := d.Category
		if category == "" {
			category = "other"
		}
		grouped[category] = append(grouped[category], MenuItem{
			Id:          d.Id,
			Name:        d.Name,
			Price:       fmt.Sprintf("$%.2f", d.Price),
			Description: d.Description,
			DietaryTags: nonNil(d.DietaryTags),
			Image:       d.ImageURL,
			Popular:     d.IsPopular,
		})
	}

	menu := &Menu{
		RestaurantId:   restaurant.Id,
		RestaurantName: restaurant.Name,
		Categories:     make([]MenuCategory, 0, len(grouped)),
	}
	for _, name := range slices.Sorted(maps.Keys(grouped)) {
		items := grouped[name]
		slices.SortStableFunc(items, func(a, b MenuItem) int {
			if a.Popular != b.Popular {
				if a.Popular {
					return -1
				}
				return 1
			}
			return cmp.Compare(a.Name, b.Name)
		})
		menu.Categories = append(menu.Categories, MenuCategory{Name: name, Items: items})
	}
	return menu, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
