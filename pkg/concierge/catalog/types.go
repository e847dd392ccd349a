package catalog

type Availability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type CardAction struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// RestaurantCard is the display form of a restaurant in chat replies.
type RestaurantCard struct {
	Type         string         `json:"type"`
	Id           string         `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	Rating       float64        `json:"rating"`
	PriceLevel   string         `json:"price_level"`
	Distance     string         `json:"distance"`
	Description  string         `json:"description"`
	Cuisine      string         `json:"cuisine"`
	Availability []Availability `json:"availability"`
	Actions      []CardAction   `json:"actions"`
}

type MenuItem struct {
	Id          uint     `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	DietaryTags []string `json:"dietary_tags"`
	Image       string   `json:"image"`
	Popular     bool     `json:"popular"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type Menu struct {
	RestaurantId   uint           `json:"restaurant_id"`
	RestaurantName string         `json:"restaurant_name"`
	Categories     []MenuCategory `json:"categories"`
}

// SearchFilter narrows Search. Zero values mean "any".
type SearchFilter struct {
	Query     string
	Cuisine   string
	MaxPrice  string // "$" to "$$$$"
	MinRating float64
}
