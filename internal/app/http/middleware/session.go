package middleware

import (
	"fmt"
	"net/http"

	"galleri-app/config"
	authapi "galleri-app/internal/api/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionAuth gates the admin API on the signed session cookie issued at
// login. It sits behind the Basic-Auth edge gate; both must pass.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := []byte(config.SESSION_SECRET)
		if len(secret) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session secret not configured"})
			c.Abort()
			return
		}

		cookie, err := c.Cookie(authapi.SessionCookie)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Ikke logget ind."})
			c.Abort()
			return
		}

		token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sessionen er udløbet. Log ind igen."})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Ikke logget ind."})
			c.Abort()
			return
		}

		c.Next()
	}
}
