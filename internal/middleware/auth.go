package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// EntityHeader lets a user who belongs to several entities pick one per request.
const EntityHeader = "X-Entity-ID"

// LedgerClaims are the JWT claims accepted by the API. Subject is the user ID.
type LedgerClaims struct {
	EntityID string `json:"entity_id,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and records the acting user and entity. Membership is checked later by the
// entity service.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		claims := &LedgerClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, opts...)
		if err != nil || !token.Valid {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		userID := claims.Subject
		if userID == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		entityID := c.GetHeader(EntityHeader)
		if entityID == "" {
			entityID = claims.EntityID
		}
		if entityID == "" {
			logger.Warn("No entity selected", slog.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "An entity must be selected via token claim or " + EntityHeader + " header"})
			return
		}

		enriched := logger.With(slog.String("user_id", userID), slog.String("entity_id", entityID))
		ctx := WithIdentity(c.Request.Context(), userID, entityID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
		c.Set(string(userIDKey), userID)
		c.Set(string(entityIDKey), entityID)

		c.Next()
	}
}
