// menu_item.go - Defines the MenuItem model for the database

package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID    uint            `gorm:"primaryKey" json:"id"`                     // Unique item ID
	Name  string          `gorm:"not null" json:"name"`                     // Display name of the dish
	Price decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"` // Price in the store currency
	Image string          `json:"image"`                                    // Image file name shown on the menu
}
