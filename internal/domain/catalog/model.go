package catalog

import "time"

// PortfolioItem is a landing-page showcase entry.
type PortfolioItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"type:varchar(255);not null" json:"title"`
	Description  *string `json:"description,omitempty"`
	ImageURL     string  `gorm:"not null" json:"image_url"`
	Category     *string `gorm:"type:varchar(100)" json:"category,omitempty"`
	DisplayOrder int     `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceSetting holds the configurable price for one item type: "digital",
// "digital_printed" or a print size ("10x15", "15x21", "20x25", "20x30").
// Prices are integer cents.
type PriceSetting struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ItemType    string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_price_settings_item_type" json:"item_type"`
	Price       int     `gorm:"not null" json:"price"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`

	UpdatedAt time.Time `json:"updated_at"`
}
