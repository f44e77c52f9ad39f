package database

import (
	"fmt"
	"log"
	"os"

	"studio-backend/internal/domain/audit"
	"studio-backend/internal/domain/catalog"
	"studio-backend/internal/domain/orders"
	"studio-backend/internal/domain/shoots"
	"studio-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Split out so tests can
// run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// people
		&users.User{},

		// photoshoots
		&shoots.Photoshoot{},
		&shoots.Photo{},

		// orders
		&orders.Order{},
		&orders.OrderItem{},

		// site content + pricing
		&catalog.PortfolioItem{},
		&catalog.PriceSetting{},

		// audit trail
		&audit.AccessLog{},
	)
}
