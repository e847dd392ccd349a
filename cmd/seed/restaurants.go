package main

import "dinedesk-be/internal/entity"

type seedDish struct {
	Name        string
	Price       float64
	Category    string
	DietaryTags []string
	ImageURL    string
	Description string
}

var allServices = []string{entity.ServiceDineIn, entity.ServiceTakeout, entity.ServiceDelivery}

var seedRestaurants = []entity.Restaurant{
	{
		Name: "Mario's Italian Bistro", Address: "123 Little Italy St", City: "New York", State: "NY",
		Phone: "(212) 555-0123", Cuisine: "italian", CuisineTypes: []string{"italian", "mediterranean"},
		PriceLevel: "$$", Rating: 4.5, ServicesOffered: allServices, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?w=300&h=200&fit=crop",
		Description: "Authentic Italian cuisine with handmade pasta and wood-fired pizza", Distance: "0.3 miles",
	},
	{
		Name: "Dragon Palace", Address: "456 Chinatown Ave", City: "New York", State: "NY",
		Phone: "(212) 555-0456", Cuisine: "chinese", CuisineTypes: []string{"chinese", "asian"},
		PriceLevel: "$$", Rating: 4.3, ServicesOffered: allServices, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=300&h=200&fit=crop",
		Description: "Traditional Chinese dishes with modern presentation", Distance: "0.5 miles",
	},
	{
		Name: "Taco Fiesta", Address: "789 Mexican Quarter", City: "New York", State: "NY",
		Phone: "(212) 555-0789", Cuisine: "mexican", CuisineTypes: []string{"mexican"},
		PriceLevel: "$", Rating: 4.2, ServicesOffered: []string{entity.ServiceTakeout, entity.ServiceDelivery}, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop",
		Description: "Fresh Mexican flavors with authentic ingredients", Distance: "0.2 miles",
	},
	{
		Name: "Spice Garden", Address: "321 Curry Lane", City: "New York", State: "NY",
		Phone: "(212) 555-0321", Cuisine: "indian", CuisineTypes: []string{"indian"},
		PriceLevel: "$$", Rating: 4.6, ServicesOffered: allServices, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=300&h=200&fit=crop",
		Description: "Aromatic Indian dishes with traditional spices", Distance: "0.7 miles",
	},
	{
		Name: "Sakura Sushi", Address: "654 Sushi Row", City: "New York", State: "NY",
		Phone: "(212) 555-0654", Cuisine: "japanese", CuisineTypes: []string{"japanese", "sushi"},
		PriceLevel: "$$$", Rating: 4.7, ServicesOffered: []string{entity.ServiceDineIn, entity.ServiceTakeout}, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=300&h=200&fit=crop",
		Description: "Fresh sushi and traditional Japanese dishes", Distance: "0.4 miles",
	},
	{
		Name: "Burger Junction", Address: "987 Burger Blvd", City: "New York", State: "NY",
		Phone: "(212) 555-0987", Cuisine: "american", CuisineTypes: []string{"american"},
		PriceLevel: "$", Rating: 4.1, ServicesOffered: allServices, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300&h=200&fit=crop",
		Description: "Classic American burgers and comfort food", Distance: "0.1 miles",
	},
	{
		Name: "Le Petit Café", Address: "147 Rue de Paris", City: "New York", State: "NY",
		Phone: "(212) 555-0147", Cuisine: "french", CuisineTypes: []string{"french"},
		PriceLevel: "$$$", Rating: 4.8, ServicesOffered: []string{entity.ServiceDineIn}, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=300&h=200&fit=crop",
		Description: "Elegant French cuisine with wine pairings", Distance: "0.6 miles",
	},
	{
		Name: "Casa Miguel", Address: "852 Casa Street", City: "New York", State: "NY",
		Phone: "(212) 555-0852", Cuisine: "mexican", CuisineTypes: []string{"mexican"},
		PriceLevel: "$$", Rating: 4.4, ServicesOffered: allServices, IsActive: true,
		ImageURL:    "https://images.unsplash.com/photo-1553909489-cd47e0ef937f?w=300&h=200&fit=crop",
		Description: "Traditional Mexican home cooking", Distance: "0.5 miles",
	},
}

var seedDishes = map[string][]seedDish{
	"italian": {
		{"Margherita Pizza", 18, "mains", []string{"vegetarian"}, "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=200&h=150&fit=crop", "Classic pizza with fresh mozzarella, tomatoes, and basil"},
		{"Fettuccine Alfredo", 16, "mains", []string{"vegetarian"}, "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=200&h=150&fit=crop", "Creamy pasta with rich Alfredo sauce and fresh herbs"},
		{"Tiramisu", 8, "desserts", []string{"vegetarian"}, "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=200&h=150&fit=crop", "Traditional Italian dessert with coffee-soaked ladyfingers"},
	},
	"chinese": {
		{"Sweet & Sour Pork", 14, "mains", nil, "https://images.unsplash.com/photo-1559847844-d721426d6edc?w=200&h=150&fit=crop", "Tender pork in tangy sweet and sour sauce with pineapple"},
		{"Kung Pao Chicken", 13, "mains", []string{"gluten_free_option"}, "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=200&h=150&fit=crop", "Spicy stir-fried chicken with peanuts and vegetables"},
		{"Vegetable Fried Rice", 10, "mains", []string{"vegetarian", "vegan_option"}, "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=200&h=150&fit=crop", "Wok-fried rice with fresh vegetables and soy sauce"},
	},
	"mexican": {
		{"Beef Tacos", 12, "mains", nil, "https://images.unsplash.com/photo-1565299507177-b0ac66763828?w=200&h=150&fit=crop", "Delicious beef tacos prepared with fresh ingredients"},
		{"Chicken Burrito", 11, "mains", nil, "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=200&h=150&fit=crop", "Delicious chicken burrito prepared with fresh ingredients"},
		{"Guacamole & Chips", 7, "appetizers", []string{"vegan"}, "https://images.unsplash.com/photo-1553909489-cd47e0ef937f?w=200&h=150&fit=crop", "Delicious guacamole & chips prepared with fresh ingredients"},
	},
	"indian": {
		{"Butter Chicken", 15, "mains", nil, "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=200&h=150&fit=crop", "Delicious butter chicken prepared with fresh ingredients"},
		{"Biryani", 14, "mains", nil, "https://images.unsplash.com/photo-1563379091339-03246963d7d3?w=200&h=150&fit=crop", "Delicious biryani prepared with fresh ingredients"},
		{"Naan Bread", 4, "sides", []string{"vegetarian"}, "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=200&h=150&fit=crop", "Delicious naan bread prepared with fresh ingredients"},
	},
	"japanese": {
		{"Salmon Roll", 12, "mains", nil, "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=200&h=150&fit=crop", "Delicious salmon roll prepared with fresh ingredients"},
		{"Chicken Teriyaki", 16, "mains", nil, "https://images.unsplash.com/photo-1580822184713-fc5400e7fe10?w=200&h=150&fit=crop", "Delicious chicken teriyaki prepared with fresh ingredients"},
		{"Miso Soup", 5, "appetizers", []string{"vegetarian"}, "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=200&h=150&fit=crop", "Delicious miso soup prepared with fresh ingredients"},
	},
	"american": {
		{"Classic Cheeseburger", 9, "mains", nil, "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=200&h=150&fit=crop", "Delicious classic cheeseburger prepared with fresh ingredients"},
		{"Loaded Fries", 6, "sides", nil, "https://images.unsplash.com/photo-1576107232684-1279f390859f?w=200&h=150&fit=crop", "Delicious loaded fries prepared with fresh ingredients"},
		{"Milkshake", 5, "desserts", []string{"vegetarian"}, "https://images.unsplash.com/photo-1541658016709-82535e94bc69?w=200&h=150&fit=crop", "Delicious milkshake prepared with fresh ingredients"},
	},
}

var genericDishes = []seedDish{
	{"House Special", 15, "mains", nil, "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=200&h=150&fit=crop", "Delicious house special prepared with fresh ingredients"},
	{"Chef's Choice", 18, "mains", nil, "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=200&h=150&fit=crop", "Delicious chef's choice prepared with fresh ingredients"},
	{"Daily Special", 12, "mains", nil, "https://images.unsplash.com/photo-1551218808-94e220e084d2?w=200&h=150&fit=crop", "Delicious daily special prepared with fresh ingredients"},
}

var seedTimeSlots = []string{"5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM", "8:30 PM", "9:00 PM"}
