package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Al1mk/Meister-Barbershop/internal/config"
)

const ContextStaffActor = "staffActor"

// AdminAuth gates the admin surface. Two capabilities are accepted:
// a staff JWT issued by the login endpoint, or the shared admin
// password sent as the Basic auth password.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		switch {
		case strings.EqualFold(parts[0], "Bearer"):
			actor, ok := staffFromToken(parts[1], cfg.JWTSecret)
			if !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
				return
			}
			c.Set(ContextStaffActor, actor)

		case strings.EqualFold(parts[0], "Basic"):
			if !basicPasswordMatches(parts[1], cfg.AdminPassword) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
				return
			}
			c.Set(ContextStaffActor, "admin")

		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		c.Next()
	}
}

func staffFromToken(tokenString, secret string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", false
	}
	return email, true
}

func basicPasswordMatches(token, expected string) bool {
	if expected == "" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}

	_, password, found := strings.Cut(string(decoded), ":")
	return found && password == expected
}

// StaffActor returns the authenticated admin identity for audit trails.
func StaffActor(c *gin.Context) string {
	if v, ok := c.Get(ContextStaffActor); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
