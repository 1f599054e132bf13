package testimonials

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

type Store interface {
	ListApproved(ctx context.Context) ([]Testimonial, error)
	ListAll(ctx context.Context) ([]Testimonial, error)
	Create(ctx context.Context, name, position, message string) (*Testimonial, error)
	Approve(ctx context.Context, id int64) (*Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the public routes: approved list and rate-limited submit.
func (h *Handler) Register(rg *gin.RouterGroup, submitLimiter gin.HandlerFunc) {
	rg.GET("", h.listApproved)
	rg.POST("", submitLimiter, h.submit)
}

// RegisterAdmin mounts the moderation routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.listAll)
	rg.PUT("/:id/approve", h.approve)
	rg.DELETE("/:id", h.delete)
}

type submitReq struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Message  string `json:"message"`
}

func (r *submitReq) validate() []gin.H {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Message = strings.TrimSpace(r.Message)

	var errs []gin.H

	if n := utf8.RuneCountInString(r.Name); n < 2 || n > 50 {
		errs = append(errs, gin.H{"field": "name", "message": "Name must be between 2 and 50 characters"})
	}
	if utf8.RuneCountInString(r.Position) > 100 {
		errs = append(errs, gin.H{"field": "position", "message": "Position must be less than 100 characters"})
	}
	if n := utf8.RuneCountInString(r.Message); n < 10 || n > 500 {
		errs = append(errs, gin.H{"field": "message", "message": "Message must be between 10 and 500 characters"})
	}

	return errs
}

func (h *Handler) listApproved(c *gin.Context) {
	items, err := h.store.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	t, err := h.store.Create(c.Request.Context(), req.Name, req.Position, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save testimonial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Testimonial submitted successfully!",
		"testimonial": t,
	})
}

func (h *Handler) listAll(c *gin.Context) {
	items, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve testimonials"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	t, err := h.store.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "testimonial": t})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Testimonial deleted"})
}
