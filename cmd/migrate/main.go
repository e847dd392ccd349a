package main

import (
	"log"
	"os"

	"dinedesk-be/internal/model"
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

	db, err := database.Open(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// Lookups the catalog runs on every chat turn.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_restaurants_cuisine_lower ON restaurants (LOWER(cuisine))`,
		`CREATE INDEX IF NOT EXISTS idx_chat_sessions_user_activity ON chat_sessions (user_id, last_activity_at DESC)`,
	}
	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v. Continuing...", err)
		}
	}

	log.Println("Migration completed")
}
