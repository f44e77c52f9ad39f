package shoots

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"studio-backend/database"
	"studio-backend/internal/app/http/middleware"
	"studio-backend/internal/domain/shoots"
	"studio-backend/internal/domain/users"
	"studio-backend/internal/drive"

	"github.com/gin-gonic/gin"
)

// Drive is the file-listing capability used by SyncPhotos. Wired in main,
// replaced by a fake in tests.
var Drive drive.Lister

// ListMine returns the calling client's photoshoots, newest first.
func ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var result []shoots.Photoshoot
	if err := database.DB.Where("client_id = ?", user.ID).
		Order("created_at DESC").Find(&result).Error; err != nil {
		c.JSON(http.StatusOK, []shoots.Photoshoot{})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAll is the admin view over every photoshoot.
func ListAll(c *gin.Context) {
	var result []shoots.Photoshoot
	if err := database.DB.Order("created_at DESC").Find(&result).Error; err != nil {
		c.JSON(http.StatusOK, []shoots.Photoshoot{})
		return
	}
	c.JSON(http.StatusOK, result)
}

// loadOwned fetches a photoshoot and enforces that the caller is its owner
// or an admin.
func loadOwned(c *gin.Context) (*shoots.Photoshoot, bool) {
	user, _ := middleware.CurrentUser(c)

	var shoot shoots.Photoshoot
	if err := database.DB.First(&shoot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photoshoot not found"})
		return nil, false
	}
	if user.Role != users.RoleAdmin && user.ID != shoot.ClientID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}
	return &shoot, true
}

func GetPhotoshoot(c *gin.Context) {
	shoot, ok := loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, shoot)
}

// ListPhotos returns the photo set of a photoshoot, in display order.
func ListPhotos(c *gin.Context) {
	shoot, ok := loadOwned(c)
	if !ok {
		return
	}

	var photos []shoots.Photo
	if err := database.DB.Where("photoshoot_id = ?", shoot.ID).
		Order("file_order ASC").Find(&photos).Error; err != nil {
		c.JSON(http.StatusOK, []shoots.Photo{})
		return
	}
	c.JSON(http.StatusOK, photos)
}

func CreatePhotoshoot(c *gin.Context) {
	var input struct {
		ClientID       uint       `json:"client_id" binding:"required"`
		Title          string     `json:"title" binding:"required"`
		Description    *string    `json:"description"`
		DriveFolderURL *string    `json:"drive_folder_url"`
		ShootDate      *time.Time `json:"shoot_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shoot := shoots.Photoshoot{
		ClientID:       input.ClientID,
		Title:          input.Title,
		Description:    input.Description,
		DriveFolderURL: input.DriveFolderURL,
		ShootDate:      input.ShootDate,
		Status:         shoots.StatusPending,
	}
	if err := database.DB.Create(&shoot).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create photoshoot"})
		return
	}
	c.JSON(http.StatusOK, shoot)
}

func UpdatePhotoshoot(c *gin.Context) {
	var shoot shoots.Photoshoot
	if err := database.DB.First(&shoot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photoshoot not found"})
		return
	}

	var input struct {
		Title          *string    `json:"title"`
		Description    *string    `json:"description"`
		DriveFolderURL *string    `json:"drive_folder_url"`
		ShootDate      *time.Time `json:"shoot_date"`
		Status         *string    `json:"status"`
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
	if input.DriveFolderURL != nil {
		updates["drive_folder_url"] = *input.DriveFolderURL
	}
	if input.ShootDate != nil {
		updates["shoot_date"] = *input.ShootDate
	}
	if input.Status != nil {
		switch *input.Status {
		case shoots.StatusPending, shoots.StatusAvailable, shoots.StatusArchived:
			updates["status"] = *input.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown status %q", *input.Status)})
			return
		}
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&shoot).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photoshoot"})
			return
		}
	}

	database.DB.First(&shoot, shoot.ID)
	c.JSON(http.StatusOK, shoot)
}

// SyncPhotos mirrors a shared folder into the photoshoot's photo set, then
// marks the photoshoot available and persists the folder URL. The status
// change deliberately lives here, one layer above the sync primitive.
func SyncPhotos(c *gin.Context) {
	var shoot shoots.Photoshoot
	if err := database.DB.First(&shoot, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photoshoot not found"})
		return
	}

	var input struct {
		DriveFolderURL string `json:"drive_folder_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := drive.SyncPhotos(c.Request.Context(), database.DB, Drive, shoot.ID, input.DriveFolderURL)
	switch {
	case errors.Is(err, drive.ErrInvalidFolderURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google Drive folder URL"})
		return
	case errors.Is(err, drive.ErrNoImagesFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images found in the folder or folder is not public"})
		return
	case errors.Is(err, drive.ErrSyncUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo listing unavailable, try again"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync photos"})
		return
	}

	if err := database.DB.Model(&shoot).Updates(map[string]interface{}{
		"status":           shoots.StatusAvailable,
		"drive_folder_url": input.DriveFolderURL,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Photos synced but failed to update photoshoot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
