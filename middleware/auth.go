package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Context keys set by Protect.
const (
	UserContextKey     = "userID"
	RoleContextKey     = "role"
	SupplierContextKey = "supplierID"
)

// Protect validates the bearer token and stores the user ID, role, and
// supplier ID (when present) in the request context. Token issuance lives in
// the auth service; this middleware only verifies.
func Protect(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(UserContextKey, sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(RoleContextKey, role)
		}
		if supplierID, ok := claims["supplierId"].(string); ok {
			c.Set(SupplierContextKey, supplierID)
		}
		c.Next()
	}
}

// RequireRole rejects requests whose token does not carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleContextKey) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the context.
func UserID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetString(UserContextKey))
	if err != nil {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return id, nil
}

// SupplierID returns the authenticated supplier's ID from the context.
func SupplierID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetString(SupplierContextKey))
	if err != nil {
		return uuid.Nil, errors.New("supplier ID not found in context")
	}
	return id, nil
}
