package middleware

import (
	"net/http"
	"strings"

	"contacts_backend/internal/auth"
	"contacts_backend/internal/logger"
	"contacts_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and checks it is the user's
// current session token, so a logout invalidates outstanding tokens even
// before they expire.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user.Token != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("userID", user.ID)
		c.Next()
	}
}
