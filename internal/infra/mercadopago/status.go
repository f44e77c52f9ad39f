package mercadopago

import "studio-backend/internal/domain/orders"

// MapPaymentStatus translates the gateway's status vocabulary into the
// order workflow. Unknown statuses default to awaiting_payment: an
// unrecognized input must never advance an order to approved.
func MapPaymentStatus(mpStatus string) string {
	switch mpStatus {
	case "approved", "authorized":
		return orders.StatusPaymentApproved
	case "pending", "in_process", "in_mediation":
		return orders.StatusAwaitingPayment
	case "rejected", "cancelled", "refunded", "charged_back":
		return orders.StatusCancelled
	default:
		return orders.StatusAwaitingPayment
	}
}
