package contact

import (
	"log"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sender Sender
}

func NewHandler(sender Sender) *Handler {
	return &Handler{sender: sender}
}

func (h *Handler) Register(rg *gin.RouterGroup, limiter gin.HandlerFunc) {
	rg.POST("", limiter, h.submit)
}

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *contactReq) validate() []gin.H {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)

	var errs []gin.H

	if n := utf8.RuneCountInString(r.Name); n < 2 || n > 50 {
		errs = append(errs, gin.H{"field": "name", "message": "Name must be between 2 and 50 characters"})
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, gin.H{"field": "email", "message": "A valid email address is required"})
	}
	if n := utf8.RuneCountInString(r.Message); n < 10 || n > 1000 {
		errs = append(errs, gin.H{"field": "message", "message": "Message must be between 10 and 1000 characters"})
	}

	return errs
}

func (h *Handler) submit(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  errs,
		})
		return
	}

	msg := Message{Name: req.Name, Email: req.Email, Body: req.Message}
	if err := h.sender.Send(c.Request.Context(), msg); err != nil {
		log.Printf("[contact] send failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send email. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message received and email sent successfully!",
	})
}
