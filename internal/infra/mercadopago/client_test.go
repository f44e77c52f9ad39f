package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePixPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Idempotency-Key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// 6000 cents go out as 60.00 in major units.
		assert.Equal(t, 60.0, body["transaction_amount"])
		assert.Equal(t, "pix", body["payment_method_id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     12345,
			"status": "pending",
			"point_of_interaction": map[string]interface{}{
				"transaction_data": map[string]interface{}{
					"qr_code":        "qr-data",
					"qr_code_base64": "cXItZGF0YQ==",
					"ticket_url":     "https://mp.example/ticket",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.BaseURL = server.URL

	payment, err := client.CreatePixPayment(context.Background(), PixParams{
		AmountCents: 6000,
		Description: "Pedido #ORD-1-1",
		Email:       "a@b.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345", payment.ID)
	assert.Equal(t, "pending", payment.Status)
	assert.Equal(t, "qr-data", payment.QRCode)
	assert.Equal(t, "https://mp.example/ticket", payment.TicketURL)
}

func TestCreateCardPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["installments"])
		assert.Equal(t, "card-token-1", body["token"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            777,
			"status":        "approved",
			"status_detail": "accredited",
		})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.BaseURL = server.URL

	payment, err := client.CreateCardPayment(context.Background(), CardParams{
		AmountCents:  4500,
		Installments: 3,
		Email:        "a@b.com",
		CardToken:    "card-token-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "777", payment.ID)
	assert.Equal(t, "approved", payment.Status)
	assert.Equal(t, "accredited", payment.StatusDetail)
}

func TestGetPaymentStatusConvertsToCents(t *testing.T) {
	amount := 60.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/12345", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                 12345,
			"status":             "approved",
			"status_detail":      "accredited",
			"transaction_amount": amount,
		})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.BaseURL = server.URL

	status, err := client.GetPaymentStatus(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", status.ID)
	assert.Equal(t, "approved", status.Status)
	assert.Equal(t, 6000, status.AmountCents)

	// 19.99 lands just below 19.99 in float64, so the conversion must
	// round; truncation would report 1998.
	amount = 19.99
	status, err = client.GetPaymentStatus(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, 1999, status.AmountCents)
}

func TestGatewayErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.BaseURL = server.URL

	_, err := client.GetPaymentStatus(context.Background(), "1")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	_, err = client.CreatePixPayment(context.Background(), PixParams{AmountCents: 100})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	missing := NewClient("")
	_, err = missing.GetPaymentStatus(context.Background(), "1")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestHandleWebhook(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":                 99,
			"status":             "approved",
			"transaction_amount": 10.0,
		})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.BaseURL = server.URL

	// Non-payment topics are ignored without touching the gateway.
	status, err := client.HandleWebhook(context.Background(), "merchant_order", "99")
	require.NoError(t, err)
	assert.Nil(t, status)
	assert.False(t, called)

	status, err = client.HandleWebhook(context.Background(), "payment", "99")
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, called, "status must be re-fetched, never taken from the payload")
	assert.Equal(t, "approved", status.Status)
}
