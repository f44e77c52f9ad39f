package orders

// Order status vocabulary, in workflow order.
const (
	StatusAwaitingPayment = "awaiting_payment"
	StatusPaymentApproved = "payment_approved"
	StatusInEditing       = "in_editing"
	StatusEditingDone     = "editing_done"
	StatusInPrinting      = "in_printing"
	StatusPrintingDone    = "printing_done"
	StatusReadyForPickup  = "ready_for_pickup"
	StatusOutForDelivery  = "out_for_delivery"
	StatusDelivered       = "delivered"
	StatusCancelled       = "cancelled"
)

// statusRank orders the workflow. ready_for_pickup and out_for_delivery are
// the same stage reached through different delivery methods, so they share a
// rank. cancelled sits outside the linear flow.
var statusRank = map[string]int{
	StatusAwaitingPayment: 0,
	StatusPaymentApproved: 1,
	StatusInEditing:       2,
	StatusEditingDone:     3,
	StatusInPrinting:      4,
	StatusPrintingDone:    5,
	StatusReadyForPickup:  6,
	StatusOutForDelivery:  6,
	StatusDelivered:       7,
}

// ValidStatus reports whether s belongs to the order status vocabulary.
func ValidStatus(s string) bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether no further transitions are allowed from s.
func IsTerminal(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from one status to
// another. The workflow only moves forward: skipping ahead is allowed
// (admin override), moving backward or re-entering the current stage is
// not. cancelled is reachable from any non-terminal state. Because a
// same-rank transition is rejected, payment_approved can only be entered
// once, so its timestamp is stamped exactly once.
func CanTransition(from, to string) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}
