package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-vote-api/internal/auth"
)

// TokenParser verifies access tokens
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Auth returns a middleware that validates access tokens and stores the caller
// in the context under "user_id", "user_name" and "is_admin"
func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tokens) {
			return
		}
		c.Next()
	}
}

// RequireAdmin returns a middleware that only lets admin tokens through
func RequireAdmin(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, tokens) {
			return
		}

		if isAdmin := c.GetBool("is_admin"); !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin permission required",
				},
				"message": "관리자 권한이 필요합니다",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// authenticate writes a 401 and aborts when the bearer token is missing or invalid
func authenticate(c *gin.Context, tokens TokenParser) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authorization header is required",
			},
			"message": "인증이 필요합니다",
		})
		c.Abort()
		return false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			},
			"message": "잘못된 인증 헤더 형식입니다",
		})
		c.Abort()
		return false
	}

	claims, err := tokens.Parse(parts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			},
			"message": "유효하지 않거나 만료된 토큰입니다",
		})
		c.Abort()
		return false
	}

	// Parse already validated the subject
	userID, _ := claims.UserID()
	c.Set("user_id", userID)
	c.Set("user_name", claims.Name)
	c.Set("is_admin", claims.IsAdmin)
	return true
}
