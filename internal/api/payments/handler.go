package payments

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"studio-backend/database"
	"studio-backend/internal/app/http/middleware"
	"studio-backend/internal/domain/orders"
	"studio-backend/internal/domain/users"
	"studio-backend/internal/infra/mercadopago"

	"github.com/gin-gonic/gin"
)

// Gateway is the Mercado Pago client, wired in main.
var Gateway *mercadopago.Client

func splitName(user *users.User) (string, string) {
	if user.Name == nil {
		return "", ""
	}
	parts := strings.SplitN(*user.Name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// CreatePix creates a PIX payment for an order and stores the gateway's
// payment id on it.
func CreatePix(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order orders.Order
	if err := database.DB.First(&order, input.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if user.Role != users.RoleAdmin && user.ID != order.ClientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	firstName, lastName := splitName(user)

	payment, err := Gateway.CreatePixPayment(c.Request.Context(), mercadopago.PixParams{
		AmountCents: order.TotalAmount,
		Description: fmt.Sprintf("Pedido #%s - Studio Milca Fotografia", order.OrderNumber),
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
	})
	if err != nil {
		if errors.Is(err, mercadopago.ErrGatewayUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment gateway unavailable, try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	if err := database.DB.Model(&orders.Order{}).Where("id = ?", order.ID).
		Update("payment_id", payment.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment created but failed to store payment id"})
		return
	}

	c.JSON(http.StatusOK, payment)
}

// CheckStatus fetches the authoritative payment status from the gateway.
func CheckStatus(c *gin.Context) {
	paymentID := c.Param("id")

	status, err := Gateway.GetPaymentStatus(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, mercadopago.ErrGatewayUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment gateway unavailable, try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check payment status"})
		return
	}

	c.JSON(http.StatusOK, status)
}
