package handler

import (
	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetPrincipal extracts the requesting principal loaded by the auth
// middleware. Reports resolve their warehouse scope from it.
func GetPrincipal(c *gin.Context) *entity.User {
	val, exists := c.Get(middleware.ContextPrincipal)
	if !exists {
		return nil
	}
	principal, ok := val.(*entity.User)
	if !ok {
		return nil
	}
	return principal
}

// GetUserRole extracts the role name from the Gin context
func GetUserRole(c *gin.Context) string {
	val, exists := c.Get(middleware.ContextUserRole)
	if !exists {
		return ""
	}
	role, _ := val.(string)
	return role
}
