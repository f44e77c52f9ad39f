package orders

import (
	"errors"
	"fmt"
	"net/http"

	"studio-backend/database"
	"studio-backend/internal/app/http/middleware"
	"studio-backend/internal/domain/audit"
	"studio-backend/internal/domain/orders"
	"studio-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// CreateOrder validates the cart and persists the order with
// server-computed prices. The client never dictates the charge.
func CreateOrder(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var input orders.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orders.Create(database.DB, user.ID, input)
	switch {
	case errors.Is(err, orders.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	case errors.Is(err, orders.ErrMissingDeliveryAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is required for delivery orders"})
		return
	case errors.Is(err, orders.ErrMissingPrintSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Print size is required for printed items"})
		return
	case errors.Is(err, orders.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	audit.Log(database.DB, user.ID, "create_order", order.OrderNumber, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
	})
}

// ListMine returns the calling client's orders with their items.
func ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var result []orders.Order
	if err := database.DB.Preload("Items").Where("client_id = ?", user.ID).
		Order("created_at DESC").Find(&result).Error; err != nil {
		c.JSON(http.StatusOK, []orders.Order{})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAll is the admin view over every order.
func ListAll(c *gin.Context) {
	var result []orders.Order
	if err := database.DB.Preload("Items").
		Order("created_at DESC").Find(&result).Error; err != nil {
		c.JSON(http.StatusOK, []orders.Order{})
		return
	}
	c.JSON(http.StatusOK, result)
}

func GetOrder(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var order orders.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if user.Role != users.RoleAdmin && user.ID != order.ClientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus moves an order through the workflow. Admin only; illegal
// transitions are rejected rather than silently accepted.
func UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order orders.Order
	if err := database.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	updated, err := orders.UpdateStatus(database.DB, order.ID, input.Status)
	switch {
	case errors.Is(err, orders.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status %q", input.Status)})
		return
	case errors.Is(err, orders.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
