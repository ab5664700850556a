package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// POST /auth/session
// Issues an anonymous browsing session. The session id keys the
// in-memory cart; nothing is written to the database.
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "session_" + generateRandomString(16)
		expiresAt := time.Now().Add(24 * time.Hour)

		token, err := issueToken(jwt.MapClaims{
			"session_id": sessionID,
			"role":       "session",
			"exp":        expiresAt.Unix(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

// POST /auth/admin/login
// The back-office has no real account system: any non-empty credential
// pair is accepted and answered with an admin token.
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		expiresAt := time.Now().Add(12 * time.Hour)
		token, err := issueToken(jwt.MapClaims{
			"user": input.Username,
			"role": "admin",
			"exp":  expiresAt.Unix(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":       input.Username,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_session"
	}
	return hex.EncodeToString(bytes)
}

func issueToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
