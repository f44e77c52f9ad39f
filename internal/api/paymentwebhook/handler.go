package paymentwebhook

import (
	"net/http"

	"studio-backend/database"
	"studio-backend/internal/api/payments"
	"studio-backend/internal/domain/orders"
	"studio-backend/internal/infra/mercadopago"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// notification is the JSON form of a Mercado Pago webhook. The older
// query-parameter form (?topic=payment&id=...) is also accepted.
type notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Handle processes a payment notification. The payload is only trusted for
// the payment id: the status is re-fetched from the gateway before any
// order is touched. Unknown topics and unknown payment ids are
// acknowledged with 200 so the gateway stops retrying.
func Handle(c *gin.Context) {
	topic := c.Query("topic")
	id := c.Query("id")

	if topic == "" || id == "" {
		var n notification
		if err := c.ShouldBindJSON(&n); err == nil && n.Type != "" {
			topic = n.Type
			id = n.Data.ID
		}
	}

	if topic == "" || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing topic or id"})
		return
	}

	status, err := payments.Gateway.HandleWebhook(c.Request.Context(), topic, id)
	if err != nil {
		// Retryable: the gateway will redeliver.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch payment status"})
		return
	}
	if status == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	var order orders.Order
	if err := database.DB.Where("payment_id = ?", status.ID).First(&order).Error; err != nil {
		logrus.WithField("payment_id", status.ID).Warn("webhook for unknown payment id")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	mapped := mercadopago.MapPaymentStatus(status.Status)
	if _, err := orders.ApplyGatewayStatus(database.DB, order.ID, mapped); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"order_id":       order.ID,
			"gateway_status": status.Status,
			"mapped_status":  mapped,
		}).Warn("could not apply gateway status to order")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
