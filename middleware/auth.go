package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(c *gin.Context) (jwt.MapClaims, bool) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// ValidateSession guards shopper endpoints and puts the session id in
// the context for the cart store.
func ValidateSession(c *gin.Context) {
	claims, ok := parseToken(c)
	if !ok {
		return
	}

	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no session"})
		c.Abort()
		return
	}

	c.Set("session_id", sessionID)
	c.Next()
}

// ValidateAdmin guards back-office endpoints.
func ValidateAdmin(c *gin.Context) {
	claims, ok := parseToken(c)
	if !ok {
		return
	}

	if role, _ := claims["role"].(string); role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	c.Set("admin_user", claims["user"])
	c.Next()
}
