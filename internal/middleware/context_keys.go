package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey   = contextKey("userID")
	entityIDKey = contextKey("entityID")
)

// WithIdentity returns a copy of ctx carrying the acting user and entity.
func WithIdentity(ctx context.Context, userID, entityID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, entityIDKey, entityID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringValue(c, userIDKey)
}

// GetEntityIDFromContext retrieves the entity the request acts on.
func GetEntityIDFromContext(c *gin.Context) (string, bool) {
	return stringValue(c, entityIDKey)
}

func stringValue(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		s, ok := val.(string)
		return s, ok && s != ""
	}
	s, ok := c.Request.Context().Value(key).(string)
	return s, ok && s != ""
}
