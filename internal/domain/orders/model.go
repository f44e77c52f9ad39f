package orders

import "time"

// Payment methods accepted at checkout.
const (
	PaymentPix    = "pix"
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
)

// Delivery methods.
const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"
)

// Formats an order item can be purchased in.
const (
	FormatDigital        = "digital"
	FormatDigitalPrinted = "digital_printed"
)

// Print sizes offered for digital_printed items.
var PrintSizes = []string{"10x15", "15x21", "20x25", "20x30"}

type Order struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ClientID     uint   `gorm:"not null;index" json:"client_id"`
	PhotoshootID uint   `gorm:"not null;index" json:"photoshoot_id"`
	OrderNumber  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_orders_order_number" json:"order_number"`

	// Integer cents, computed server-side at creation time.
	TotalAmount int `gorm:"not null" json:"total_amount"`

	PaymentMethod string  `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentID     *string `gorm:"type:varchar(255)" json:"payment_id,omitempty"`
	Installments  int     `gorm:"not null;default:1" json:"installments"`

	DeliveryMethod  string  `gorm:"type:varchar(20);not null" json:"delivery_method"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`

	Status string `gorm:"type:varchar(30);not null;default:'awaiting_payment'" json:"status"`

	// Set exactly once, on the transition into payment_approved.
	PaymentConfirmedAt *time.Time `json:"payment_confirmed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"order_id"`
	PhotoID uint `gorm:"not null" json:"photo_id"`

	Format    string  `gorm:"type:varchar(20);not null" json:"format"`
	PrintSize *string `gorm:"type:varchar(10)" json:"print_size,omitempty"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`

	// Captured at order creation. Later price-setting changes never touch it.
	UnitPrice int `gorm:"not null" json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
}

// ValidPrintSize reports whether s is one of the offered print sizes.
func ValidPrintSize(s string) bool {
	for _, size := range PrintSizes {
		if s == size {
			return true
		}
	}
	return false
}
