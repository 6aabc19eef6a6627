package config

import (
	"log"
	"os"
	"strings"

	"restaurant-reviews-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_reviews_super_secret_2025"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Open connects to the SQLite database at path and migrates the schema.
// Foreign keys are switched on per connection so the cascade constraints
// actually fire.
func Open(path string) (*gorm.DB, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.Open(path+sep+"_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// favorites is a join table with its own composite-key model
	if err := db.SetupJoinTable(&models.User{}, "FavoriteRestaurants", &models.Favorite{}); err != nil {
		return nil, err
	}
	if err := db.SetupJoinTable(&models.Restaurant{}, "FavoritedBy", &models.Favorite{}); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Review{},
		&models.Photo{},
		&models.Category{},
		&models.AccessToken{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func InitDB() {
	var err error
	DB, err = Open(getEnv("DB_PATH", "restaurant_reviews.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated")
}
