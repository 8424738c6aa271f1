package contactapi

import (
	"log"
	"net/http"

	"galleri-app/internal/api/forms"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	mailer Mailer
}

func NewHandler(mailer Mailer) *Handler {
	return &Handler{mailer: mailer}
}

type contactRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required,min=10"`
	Artwork  string `json:"artwork"`
	Subject  string `json:"subject"`
	FromCart string `json:"from_cart"`
}

// POST /api/contact
func (h *Handler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Udfyld venligst alle felter korrekt.",
			"errors":  forms.FieldErrors(err),
			"success": false,
		})
		return
	}

	err := h.mailer.Send(Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Artwork: req.Artwork,
		Subject: req.Subject,
	})
	if err != nil {
		log.Printf("Email sending failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Der opstod en fejl under afsendelse af din besked. Prøv venligst igen.",
			"success": false,
		})
		return
	}

	if req.FromCart != "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "Tak for din besked! Din forespørgsel er sendt og din kurv er nu tømt.",
			"success": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tak for din besked! Jeg vender tilbage hurtigst muligt.",
		"success": true,
	})
}
