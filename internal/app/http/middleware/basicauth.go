package middleware

import (
	"net/http"

	authapi "galleri-app/internal/api/auth"

	"github.com/gin-gonic/gin"
)

// AdminBasicAuth challenges the whole admin route prefix with HTTP Basic Auth.
// It is an edge gate stacked on top of the session cookie, both driven by the
// same configured credentials.
func AdminBasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if ok && authapi.CredentialsValid(user, pass) {
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", `Basic realm="Secure Area"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Auth required"})
	}
}
