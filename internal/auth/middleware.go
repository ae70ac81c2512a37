package auth

import (
	"net/http"

	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"
	"hitbox/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the session token.
const HeaderName = "x-auth-token"

// AuthMiddleware creates a gin middleware requiring a valid session
// token. On success the user ID and raw token are stored on the
// context for handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(HeaderName)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			return
		}

		userID, _, err := jwt.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			return
		}

		// Tokens revoked by logout stay invalid until they expire.
		var revoked models.BlacklistedToken
		if err := database.DB.Where("token = ?", tokenString).First(&revoked).Error; err == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			return
		}

		c.Set("userID", userID)
		c.Set("token", tokenString)
		c.Next()
	}
}
