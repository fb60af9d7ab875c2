package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/presentation/http/dto/response"
	"github.com/sangkips/medrep-crm/pkg/utils"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID    = "user_id"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}
