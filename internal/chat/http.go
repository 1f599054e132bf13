package chat

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Generator produces a reply for one fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Handler struct {
	gen Generator
}

func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.chat)
}

type chatReq struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	// No server-side history: the prompt is always context + latest message.
	prompt := systemContext + "\n\nUser: " + strings.TrimSpace(req.Message) + "\n\nAssistant:"

	reply, err := h.gen.Generate(c.Request.Context(), prompt)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please retry in a few seconds."})
			return
		}
		log.Printf("[chat] generate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sorry, something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
