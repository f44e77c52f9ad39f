package auth

import (
	"errors"
	"net/http"

	"studio-backend/config"
	"studio-backend/database"
	"studio-backend/internal/app/http/middleware"
	authsvc "studio-backend/internal/auth"
	"studio-backend/internal/domain/audit"
	"studio-backend/internal/session"

	"github.com/gin-gonic/gin"
)

func setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := config.APP_ENV == "production"
	c.SetCookie(config.SessionCookieName, sessionID, int(session.TTL.Seconds()), "/", "", secure, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := config.APP_ENV == "production"
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", secure, true)
}

// Login authenticates a client with email + linking code and sets the
// session cookie.
func Login(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, user, err := authsvc.LoginWithCode(c.Request.Context(), database.DB, input.Email, input.Code)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	setSessionCookie(c, sessionID)
	audit.Log(database.DB, user.ID, "login", "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// AdminLogin issues a session for an admin by email alone. This bypass has
// no secret and must be shielded at the network/deployment layer.
func AdminLogin(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, admin, err := authsvc.LoginAsAdmin(c.Request.Context(), database.DB, input.Email)
	if err != nil {
		if errors.Is(err, authsvc.ErrAdminNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	setSessionCookie(c, sessionID)
	audit.Log(database.DB, admin.ID, "admin_login", "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"user": admin})
}

// Logout invalidates the server-side session and clears the cookie.
// Idempotent: logging out twice is fine.
func Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(config.SessionCookieName); err == nil && sessionID != "" {
		session.Destroy(c.Request.Context(), sessionID)
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user, or null when the session is absent or
// expired.
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// LinkAccount consumes a linking code on behalf of the calling identity.
func LinkAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		LinkingCode string `json:"linking_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := authsvc.LinkAccount(database.DB, user, input.LinkingCode)
	switch {
	case errors.Is(err, authsvc.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Linking code not found"})
		return
	case errors.Is(err, authsvc.ErrCodeAlreadyUsed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "This code has already been used"})
		return
	case errors.Is(err, authsvc.ErrEmailMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account email does not match this client record"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link account"})
		return
	}

	audit.Log(database.DB, user.ID, "link_account", "", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
