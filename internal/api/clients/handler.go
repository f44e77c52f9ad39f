package clients

import (
	"fmt"
	"net/http"
	"time"

	"studio-backend/database"
	authsvc "studio-backend/internal/auth"
	"studio-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// ListClients returns all client accounts, newest first. Degrades to an
// empty list if the query fails.
func ListClients(c *gin.Context) {
	var clients []users.User
	if err := database.DB.Where("role = ?", users.RoleClient).
		Order("created_at DESC").Find(&clients).Error; err != nil {
		c.JSON(http.StatusOK, []users.User{})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	var client users.User
	if err := database.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient registers a new client with a fresh linking code and a
// generated one-time password. Both are returned once; only the password
// hash is stored.
func CreateClient(c *gin.Context) {
	var input struct {
		Name  string  `json:"name" binding:"required"`
		Email string  `json:"email" binding:"required,email"`
		Phone *string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	linkingCode := authsvc.NewLinkingCode()
	password, passwordHash, err := authsvc.NewClientPassword()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate client password"})
		return
	}

	client := users.User{
		OpenID:         fmt.Sprintf("temp_%d", time.Now().UnixNano()),
		Name:           &input.Name,
		Email:          &input.Email,
		Phone:          input.Phone,
		Role:           users.RoleClient,
		LinkingCode:    &linkingCode,
		ClientPassword: &passwordHash,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email or linking code may already exist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"linking_code": linkingCode,
		"password":     password,
	})
}

// RegenerateLinkingCode replaces the client's code, so at most one code is
// ever active per client.
func RegenerateLinkingCode(c *gin.Context) {
	var client users.User
	if err := database.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	newCode := authsvc.NewLinkingCode()
	if err := database.DB.Model(&client).Update("linking_code", newCode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to regenerate code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"linking_code": newCode})
}
