package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/medrep-crm/internal/application/service"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// GetUserName extracts the user name from the Gin context
func GetUserName(c *gin.Context) string {
	return c.GetString("user_name")
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

// GetIdentity builds the service identity of the authenticated user
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	userID := GetUserID(c)
	if userID == "" {
		return service.Identity{}, false
	}
	return service.Identity{
		UserID: userID,
		Name:   GetUserName(c),
		Email:  GetUserEmail(c),
	}, true
}
