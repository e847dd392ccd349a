package dto

type SearchRestaurantsRequest struct {
	Query     string  `query:"q" validate:"max=100"`
	Cuisine   string  `query:"cuisine" validate:"max=50"`
	MaxPrice  string  `query:"max_price" validate:"omitempty,max=4"`
	MinRating float64 `query:"min_rating" validate:"min=0,max=5"`
}

type RestaurantDetailResponse struct {
	Id              uint     `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Phone           string   `json:"phone"`
	Cuisine         string   `json:"cuisine"`
	CuisineTypes    []string `json:"cuisine_types"`
	PriceLevel      string   `json:"price_level"`
	Rating          float64  `json:"rating"`
	ServicesOffered []string `json:"services_offered"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	Distance        string   `json:"distance"`
}
