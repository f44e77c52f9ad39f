package mercadopago

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrGatewayUnavailable covers transport and HTTP-level failures talking to
// Mercado Pago. Callers retry at the request layer; there is no internal
// retry loop.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

const defaultBaseURL = "https://api.mercadopago.com"

// Client wraps the Mercado Pago payments REST API.
// Docs: https://www.mercadopago.com.br/developers/en/docs/checkout-api
type Client struct {
	AccessToken string
	BaseURL     string

	httpClient *http.Client
}

func NewClient(accessToken string) *Client {
	return &Client{
		AccessToken: accessToken,
		BaseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type PixParams struct {
	AmountCents int
	Description string
	Email       string
	FirstName   string
	LastName    string
}

type PixPayment struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	TicketURL    string `json:"ticket_url"`
}

type CardParams struct {
	AmountCents  int
	Description  string
	Installments int
	Email        string
	// Card token issued by the frontend SDK; raw card data never reaches us.
	CardToken string
	FirstName string
	LastName  string
}

type CardPayment struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
}

type PaymentStatus struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	StatusDetail string `json:"status_detail"`
	// Converted back to integer cents from the gateway's major units.
	AmountCents int `json:"amount_cents"`
}

// paymentResponse is the boundary shape: only the fields we consume, with
// the numeric id normalized to a string.
type paymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	StatusDetail       string      `json:"status_detail"`
	TransactionAmount  float64     `json:"transaction_amount"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// CreatePixPayment creates a PIX payment. Amounts are stored as cents and
// sent to the gateway in major currency units.
func (c *Client) CreatePixPayment(ctx context.Context, params PixParams) (*PixPayment, error) {
	body := map[string]interface{}{
		"transaction_amount": float64(params.AmountCents) / 100,
		"description":        params.Description,
		"payment_method_id":  "pix",
		"payer": map[string]interface{}{
			"email":      params.Email,
			"first_name": params.FirstName,
			"last_name":  params.LastName,
		},
	}

	payment, err := c.postPayment(ctx, body)
	if err != nil {
		return nil, err
	}

	return &PixPayment{
		ID:           payment.ID.String(),
		Status:       payment.Status,
		QRCode:       payment.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: payment.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    payment.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

// CreateCardPayment charges a tokenized card, optionally in installments.
func (c *Client) CreateCardPayment(ctx context.Context, params CardParams) (*CardPayment, error) {
	installments := params.Installments
	if installments < 1 {
		installments = 1
	}

	body := map[string]interface{}{
		"transaction_amount": float64(params.AmountCents) / 100,
		"description":        params.Description,
		"installments":       installments,
		"token":              params.CardToken,
		"payer": map[string]interface{}{
			"email":      params.Email,
			"first_name": params.FirstName,
			"last_name":  params.LastName,
		},
	}

	payment, err := c.postPayment(ctx, body)
	if err != nil {
		return nil, err
	}

	return &CardPayment{
		ID:           payment.ID.String(),
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
	}, nil
}

// GetPaymentStatus fetches the authoritative state of a payment.
func (c *Client) GetPaymentStatus(ctx context.Context, paymentID string) (*PaymentStatus, error) {
	if c.AccessToken == "" {
		return nil, fmt.Errorf("%w: access token not configured", ErrGatewayUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	payment, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return &PaymentStatus{
		ID:           payment.ID.String(),
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
		AmountCents:  int(math.Round(payment.TransactionAmount * 100)),
	}, nil
}

// HandleWebhook processes a gateway notification. The payload's own status
// is never trusted: the payment is re-fetched and the authoritative status
// returned. Non-payment topics yield (nil, nil).
func (c *Client) HandleWebhook(ctx context.Context, topic, id string) (*PaymentStatus, error) {
	if topic != "payment" {
		return nil, nil
	}
	status, err := c.GetPaymentStatus(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("payment_id", id).Warn("webhook status re-fetch failed")
		return nil, err
	}
	return status, nil
}

func (c *Client) postPayment(ctx context.Context, body map[string]interface{}) (*paymentResponse, error) {
	if c.AccessToken == "" {
		return nil, fmt.Errorf("%w: access token not configured", ErrGatewayUnavailable)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/payments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", newIdempotencyKey())

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*paymentResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: gateway returned %d", ErrGatewayUnavailable, resp.StatusCode)
	}

	var payment paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return &payment, nil
}

func newIdempotencyKey() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), hex.EncodeToString(bytes))
}
