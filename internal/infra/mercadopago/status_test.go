package mercadopago

import (
	"testing"

	"studio-backend/internal/domain/orders"

	"github.com/stretchr/testify/assert"
)

func TestMapPaymentStatus(t *testing.T) {
	cases := map[string]string{
		"pending":      orders.StatusAwaitingPayment,
		"in_process":   orders.StatusAwaitingPayment,
		"in_mediation": orders.StatusAwaitingPayment,
		"approved":     orders.StatusPaymentApproved,
		"authorized":   orders.StatusPaymentApproved,
		"rejected":     orders.StatusCancelled,
		"cancelled":    orders.StatusCancelled,
		"refunded":     orders.StatusCancelled,
		"charged_back": orders.StatusCancelled,
	}
	for mpStatus, want := range cases {
		assert.Equal(t, want, MapPaymentStatus(mpStatus), mpStatus)
	}
}

func TestMapPaymentStatusUnknownNeverApproves(t *testing.T) {
	for _, s := range []string{"", "unknown", "APPROVED", "paid", "settled"} {
		assert.Equal(t, orders.StatusAwaitingPayment, MapPaymentStatus(s), s)
	}
}
