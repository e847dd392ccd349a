package service

import (
	"context"
	"slices"

	"dinedesk-be/internal/dto"
	"dinedesk-be/pkg/concierge/catalog"
)

// IRestaurantService exposes the catalog to the public restaurant endpoints.
type IRestaurantService interface {
	Popular(ctx context.Context) ([]catalog.RestaurantCard, error)
	Cuisines(ctx context.Context) ([]string, error)
	Search(ctx context.Context, req *dto.SearchRestaurantsRequest) ([]catalog.RestaurantCard, error)
	Details(ctx context.Context, restaurantId uint) (*dto.RestaurantDetailResponse, error)
	Menu(ctx context.Context, restaurantId uint) (*catalog.Menu, error)
}

type restaurantService struct {
	catalog *catalog.Catalog
}

func NewRestaurantService(cat *catalog.Catalog) IRestaurantService {
	return &restaurantService{catalog: cat}
}

func (s *restaurantService) Popular(ctx context.Context) ([]catalog.RestaurantCard, error) {
	cards, err := s.catalog.Popular(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilCards(slices.Collect(cards)), nil
}

func (s *restaurantService) Cuisines(ctx context.Context) ([]string, error) {
	return s.catalog.Cuisines(ctx)
}

func (s *restaurantService) Search(ctx context.Context, req *dto.SearchRestaurantsRequest) ([]catalog.RestaurantCard, error) {
	cards, err := s.catalog.Search(ctx, catalog.SearchFilter{
		Query:     req.Query,
		Cuisine:   req.Cuisine,
		MaxPrice:  req.MaxPrice,
		MinRating: req.MinRating,
	})
	if err != nil {
		return nil, err
	}
	return nonNilCards(slices.Collect(cards)), nil
}

func (s *restaurantService) Details(ctx context.Context, restaurantId uint) (*dto.RestaurantDetailResponse, error) {
	r, err := s.catalog.Details(ctx, restaurantId)
	if err != nil {
		return nil, err
	}
	return &dto.RestaurantDetailResponse{
		Id:              r.Id,
		Name:            r.Name,
		Address:         r.Address,
		City:            r.City,
		State:           r.State,
		Phone:           r.Phone,
		Cuisine:         r.Cuisine,
		CuisineTypes:    r.CuisineTypes,
		PriceLevel:      r.PriceLevel,
		Rating:          r.Rating,
		ServicesOffered: r.ServicesOffered,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Distance:        r.Distance,
	}, nil
}

func (s *restaurantService) Menu(ctx context.Context, restaurantId uint) (*catalog.Menu, error) {
	return s.catalog.Menu(ctx, restaurantId)
}

func nonNilCards(cards []catalog.RestaurantCard) []catalog.RestaurantCard {
	if cards == nil {
		return []catalog.RestaurantCard{}
	}
	return cards
}
