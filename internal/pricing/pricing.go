package pricing

import (
	"studio-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

// Item types priced by this package. They mirror the order item formats.
const (
	ItemDigital        = "digital"
	ItemDigitalPrinted = "digital_printed"
)

// Compiled-in defaults, integer cents. A PriceSetting row with the same
// item type overrides the default; for print sizes the row holds the
// surcharge on top of the printed base price.
const (
	DefaultDigitalPrice = 1000
	DefaultPrintedBase  = 1500
)

var defaultSizeSurcharge = map[string]int{
	"10x15": 0,
	"15x21": 500,
	"20x25": 1000,
	"20x30": 1500,
}

// PriceList is a snapshot of the active price settings, keyed by item type.
// Orders price every item against one snapshot, so a settings change
// mid-request cannot produce a mixed total.
type PriceList map[string]int

// Load reads the active price settings. A read failure degrades to the
// compiled-in defaults rather than blocking checkout.
func Load(db *gorm.DB) PriceList {
	list := PriceList{}
	var settings []catalog.PriceSetting
	if err := db.Where("is_active = ?", true).Find(&settings).Error; err != nil {
		return list
	}
	for _, s := range settings {
		list[s.ItemType] = s.Price
	}
	return list
}

func (p PriceList) lookup(itemType string, fallback int) int {
	if v, ok := p[itemType]; ok {
		return v
	}
	return fallback
}

// UnitPrice computes the price of one item: a flat price for digital-only,
// or the printed base plus the size surcharge for digital_printed.
func (p PriceList) UnitPrice(format string, printSize *string) int {
	if format != ItemDigitalPrinted {
		return p.lookup(ItemDigital, DefaultDigitalPrice)
	}

	price := p.lookup(ItemDigitalPrinted, DefaultPrintedBase)
	if printSize != nil {
		price += p.lookup(*printSize, defaultSizeSurcharge[*printSize])
	}
	return price
}
