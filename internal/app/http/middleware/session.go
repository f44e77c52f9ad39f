package middleware

import (
	"net/http"

	"studio-backend/config"
	"studio-backend/database"
	"studio-backend/internal/domain/users"
	"studio-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the session cookie into a user and stores it
// in the request context. Missing or expired sessions are not an error:
// the request continues unauthenticated and route guards decide.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(config.SessionCookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		userID, ok := session.Resolve(c.Request.Context(), sessionID)
		if !ok {
			c.Next()
			return
		}

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.Next()
			return
		}

		c.Set("user", &user)
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *gin.Context) (*users.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok
}

// RequireAuth aborts unauthenticated requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireRole aborts requests whose user does not carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
