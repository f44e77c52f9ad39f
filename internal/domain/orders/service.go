package orders

import (
	"errors"
	"fmt"
	"time"

	"studio-backend/internal/pricing"

	"gorm.io/gorm"
)

var (
	ErrEmptyCart              = errors.New("order has no items")
	ErrMissingDeliveryAddress = errors.New("delivery address is required for delivery orders")
	ErrMissingPrintSize       = errors.New("print size is required for printed items")
	ErrInvalidItem            = errors.New("invalid order item")
	ErrUnknownStatus          = errors.New("unknown order status")
	ErrIllegalTransition      = errors.New("illegal status transition")
)

type NewItem struct {
	PhotoID   uint    `json:"photo_id" binding:"required"`
	Format    string  `json:"format" binding:"required"`
	PrintSize *string `json:"print_size"`
	Quantity  int     `json:"quantity"`
}

type CreateInput struct {
	PhotoshootID    uint      `json:"photoshoot_id" binding:"required"`
	Items           []NewItem `json:"items"`
	PaymentMethod   string    `json:"payment_method" binding:"required"`
	Installments    int       `json:"installments"`
	DeliveryMethod  string    `json:"delivery_method" binding:"required"`
	DeliveryAddress *string   `json:"delivery_address"`
}

// Create validates the cart, prices every item against one snapshot of the
// price settings, and persists the order together with its items in a
// single transaction. Unit prices are captured on the items and never
// recomputed, so later price changes leave existing orders untouched.
func Create(db *gorm.DB, clientID uint, in CreateInput) (*Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if in.DeliveryMethod == DeliveryDelivery &&
		(in.DeliveryAddress == nil || *in.DeliveryAddress == "") {
		return nil, ErrMissingDeliveryAddress
	}

	for _, item := range in.Items {
		if item.Format != FormatDigital && item.Format != FormatDigitalPrinted {
			return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidItem, item.Format)
		}
		if item.Format == FormatDigitalPrinted {
			if item.PrintSize == nil || *item.PrintSize == "" {
				return nil, ErrMissingPrintSize
			}
			if !ValidPrintSize(*item.PrintSize) {
				return nil, fmt.Errorf("%w: unknown print size %q", ErrInvalidItem, *item.PrintSize)
			}
		}
	}

	prices := pricing.Load(db)

	installments := in.Installments
	if installments < 1 {
		installments = 1
	}

	order := Order{
		ClientID:        clientID,
		PhotoshootID:    in.PhotoshootID,
		OrderNumber:     newOrderNumber(clientID),
		PaymentMethod:   in.PaymentMethod,
		Installments:    installments,
		DeliveryMethod:  in.DeliveryMethod,
		DeliveryAddress: in.DeliveryAddress,
		Status:          StatusAwaitingPayment,
	}

	for _, item := range in.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		unitPrice := prices.UnitPrice(item.Format, item.PrintSize)
		order.Items = append(order.Items, OrderItem{
			PhotoID:   item.PhotoID,
			Format:    item.Format,
			PrintSize: item.PrintSize,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
		order.TotalAmount += unitPrice * quantity
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order through the workflow. Transitions that do
// not advance the workflow are rejected. Entering payment_approved stamps
// PaymentConfirmedAt.
func UpdateStatus(db *gorm.DB, orderID uint, newStatus string) (*Order, error) {
	if !ValidStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	var order Order
	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, newStatus)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == StatusPaymentApproved {
		now := time.Now()
		updates["payment_confirmed_at"] = now
		order.PaymentConfirmedAt = &now
	}

	if err := db.Model(&Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = newStatus
	return &order, nil
}

// ApplyGatewayStatus applies a status derived from the payment gateway.
// Unlike UpdateStatus it treats "already there" as success, because the
// gateway may notify the same state more than once.
func ApplyGatewayStatus(db *gorm.DB, orderID uint, newStatus string) (*Order, error) {
	var order Order
	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if order.Status == newStatus {
		return &order, nil
	}
	return UpdateStatus(db, orderID, newStatus)
}

// newOrderNumber builds a time-based composite: the millisecond timestamp
// plus the client id keeps concurrent orders by different clients from
// colliding.
func newOrderNumber(clientID uint) string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), clientID)
}
