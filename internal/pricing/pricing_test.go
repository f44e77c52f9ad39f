package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func size(s string) *string { return &s }

func TestUnitPriceDefaults(t *testing.T) {
	list := PriceList{}

	assert.Equal(t, 1000, list.UnitPrice(ItemDigital, nil))
	assert.Equal(t, 1500, list.UnitPrice(ItemDigitalPrinted, size("10x15")))
	assert.Equal(t, 2000, list.UnitPrice(ItemDigitalPrinted, size("15x21")))
	assert.Equal(t, 2500, list.UnitPrice(ItemDigitalPrinted, size("20x25")))
	assert.Equal(t, 3000, list.UnitPrice(ItemDigitalPrinted, size("20x30")))
}

func TestUnitPriceTiersStrictlyIncrease(t *testing.T) {
	list := PriceList{}
	prev := 0
	for _, s := range []string{"10x15", "15x21", "20x25", "20x30"} {
		price := list.UnitPrice(ItemDigitalPrinted, size(s))
		assert.Greater(t, price, prev, s)
		prev = price
	}
}

func TestUnitPriceSettingsOverride(t *testing.T) {
	list := PriceList{
		"digital":         1200,
		"digital_printed": 1800,
		"20x30":           2000,
	}

	assert.Equal(t, 1200, list.UnitPrice(ItemDigital, nil))
	assert.Equal(t, 3800, list.UnitPrice(ItemDigitalPrinted, size("20x30")))
	// Sizes without an override keep the default surcharge.
	assert.Equal(t, 2300, list.UnitPrice(ItemDigitalPrinted, size("15x21")))
}
