package prices

import (
	"net/http"

	"studio-backend/database"
	"studio-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GetAll returns the price settings. Public: the cart needs them to show
// advisory totals, but the persisted charge is always recomputed
// server-side at order creation.
func GetAll(c *gin.Context) {
	var settings []catalog.PriceSetting
	if err := database.DB.Order("item_type ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusOK, []catalog.PriceSetting{})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Upsert creates or updates the setting for one item type. Existing orders
// keep their captured unit prices regardless.
func Upsert(c *gin.Context) {
	var input struct {
		ItemType string `json:"item_type" binding:"required"`
		// Pointer so an explicit 0 (a free surcharge tier) passes validation.
		Price       *int    `json:"price" binding:"required"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
		return
	}

	var setting catalog.PriceSetting
	err := database.DB.Where("item_type = ?", input.ItemType).First(&setting).Error
	if err != nil {
		setting = catalog.PriceSetting{
			ItemType:    input.ItemType,
			Price:       *input.Price,
			Description: input.Description,
			IsActive:    true,
		}
		if err := database.DB.Create(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price setting"})
			return
		}
		c.JSON(http.StatusOK, setting)
		return
	}

	updates := map[string]interface{}{"price": *input.Price, "is_active": true}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if err := database.DB.Model(&setting).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save price setting"})
		return
	}

	database.DB.First(&setting, setting.ID)
	c.JSON(http.StatusOK, setting)
}
