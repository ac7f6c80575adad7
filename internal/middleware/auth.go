package middleware

import (
	"net/http"
	"strings"

	"infrastreet/internal/auth"

	"github.com/gin-gonic/gin"
)

// VendorAuth guards owner-only vendor routes. It validates the
// bearer token and attaches the vendorID to the request context.
func VendorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		vendorID, err := auth.ValidateVendorToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("vendorID", vendorID)
		c.Next()
	}
}
