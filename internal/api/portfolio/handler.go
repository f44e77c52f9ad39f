package portfolio

import (
	"net/http"

	"studio-backend/database"
	"studio-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// GetActive returns the published portfolio for the landing page, in
// display order. Degrades to an empty list on read failure so the public
// site still renders.
func GetActive(c *gin.Context) {
	var items []catalog.PortfolioItem
	if err := database.DB.Where("is_active = ?", true).
		Order("display_order ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusOK, []catalog.PortfolioItem{})
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetAll(c *gin.Context) {
	var items []catalog.PortfolioItem
	if err := database.DB.Order("display_order ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusOK, []catalog.PortfolioItem{})
		return
	}
	c.JSON(http.StatusOK, items)
}

func Create(c *gin.Context) {
	var input struct {
		Title        string  `json:"title" binding:"required"`
		Description  *string `json:"description"`
		ImageURL     string  `json:"image_url" binding:"required"`
		Category     *string `json:"category"`
		DisplayOrder int     `json:"display_order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := catalog.PortfolioItem{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portfolio item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func Update(c *gin.Context) {
	var item catalog.PortfolioItem
	if err := database.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
		return
	}

	var input struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		ImageURL     *string `json:"image_url"`
		Category     *string `json:"category"`
		DisplayOrder *int    `json:"display_order"`
		IsActive     *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio item"})
			return
		}
	}

	database.DB.First(&item, item.ID)
	c.JSON(http.StatusOK, item)
}

func Delete(c *gin.Context) {
	if err := database.DB.Delete(&catalog.PortfolioItem{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
