package authapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"galleri-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie carries the signed admin session token.
const SessionCookie = "galleri-session"

const sessionTTL = 24 * time.Hour

// CredentialsValid checks a username/password pair against the configured
// admin credentials. ADMIN_PASS_HASH (bcrypt) wins over plain ADMIN_PASS;
// comparisons are constant-time either way.
func CredentialsValid(username, password string) bool {
	if config.ADMIN_USER == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(config.ADMIN_USER)) != 1 {
		return false
	}
	if config.ADMIN_PASS_HASH != "" {
		return bcrypt.CompareHashAndPassword([]byte(config.ADMIN_PASS_HASH), []byte(password)) == nil
	}
	if config.ADMIN_PASS == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(config.ADMIN_PASS)) == 1
}

// POST /api/login
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brugernavn eller adgangskode er forkert."})
		return
	}

	if !CredentialsValid(input.Username, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Brugernavn eller adgangskode er forkert."})
		return
	}

	if config.SESSION_SECRET == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session secret not configured"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(config.SESSION_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.SetCookie(SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/logout
func Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}
