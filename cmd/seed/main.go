package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"dinedesk-be/internal/entity"
	"dinedesk-be/internal/repository/unitofwork"
	"dinedesk-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.Open(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	repos := unitofwork.NewRepositoryFactory(db)
	uow := repos.NewUnitOfWork(ctx)

	existing, err := uow.RestaurantRepository().FindOne(ctx)
	if err != nil {
		log.Fatal("Error: Failed to check restaurants:", err)
	}
	if existing != nil {
		log.Println("Restaurants already seeded, skipping...")
		return
	}

	err = repos.Transaction(ctx, func(tx unitofwork.UnitOfWork) error {
		return seed(ctx, tx, time.Now().UTC())
	})
	if err != nil {
		log.Fatal("Error: Seeding failed:", err)
	}

	log.Printf("Seeded %d restaurants", len(seedRestaurants))
}

func seed(ctx context.Context, uow unitofwork.UnitOfWork, today time.Time) error {
	for _, r := range seedRestaurants {
		restaurant := r
		if err := uow.RestaurantRepository().Create(ctx, &restaurant); err != nil {
			return err
		}

		dishes, ok := seedDishes[restaurant.Cuisine]
		if !ok {
			dishes = genericDishes
		}
		for i, d := range dishes {
			dish := entity.Dish{
				RestaurantId: restaurant.Id,
				Name:         d.Name,
				Description:  d.Description,
				Price:        d.Price,
				Category:     d.Category,
				DietaryTags:  d.DietaryTags,
				ImageURL:     d.ImageURL,
				IsAvailable:  true,
				IsPopular:    i < 2,
			}
			if err := uow.DishRepository().Create(ctx, &dish); err != nil {
				return err
			}
		}

		if !restaurant.Offers(entity.ServiceDineIn) {
			continue
		}
		for _, ts := range seedTimeSlots {
			slot := entity.AvailabilitySlot{
				RestaurantId: restaurant.Id,
				TimeSlot:     ts,
				Date:         today,
				IsAvailable:  rand.Float64() > 0.2,
			}
			if err := uow.AvailabilityRepository().Create(ctx, &slot); err != nil {
				return err
			}
		}
	}
	return nil
}
