// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt" // For error wrapping

	"go-storefront-backend/models" // Data models

	"github.com/shopspring/decimal" // Exact decimal prices
	"gorm.io/driver/sqlite"         // SQLite driver for GORM
	"gorm.io/gorm"                  // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error // Declare error variable
	// TranslateError maps driver errors to GORM sentinels like ErrDuplicatedKey
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil { // If error, return it
		return fmt.Errorf("open database: %w", err)
	}

	// Auto-migrate the models (create tables if needed)
	if err := DB.AutoMigrate(&models.User{}, &models.MenuItem{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Fill the menu with the standard dishes on first run
	return seedMenu()
}

// seedMenu - Inserts the fixed menu when the table is still empty,
// so restarts never duplicate rows
func seedMenu() error {
	var count int64
	if err := DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 { // Menu already seeded
		return nil
	}

	items := []models.MenuItem{
		{Name: "Burger", Price: decimal.RequireFromString("99.00"), Image: "burger.jpg"},
		{Name: "Pizza", Price: decimal.RequireFromString("199.00"), Image: "pizza.jpg"},
		{Name: "Pasta", Price: decimal.RequireFromString("149.00"), Image: "pasta.jpg"},
		{Name: "Salad", Price: decimal.RequireFromString("89.00"), Image: "salad.jpg"},
		{Name: "Sushi", Price: decimal.RequireFromString("89.00"), Image: "sushi.jpg"},
		{Name: "Fries", Price: decimal.RequireFromString("49.00"), Image: "fries.jpg"},
		{Name: "Taco", Price: decimal.RequireFromString("129.00"), Image: "taco.jpg"},
		{Name: "Sandwich", Price: decimal.RequireFromString("89.00"), Image: "sandwich.jpg"},
		{Name: "Ice Cream", Price: decimal.RequireFromString("59.00"), Image: "icecream.jpg"},
	}

	if err := DB.Create(&items).Error; err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}
