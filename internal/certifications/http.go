package certifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Store interface {
	List(ctx context.Context) ([]Certification, error)
	Get(ctx context.Context, id int64) (*Certification, error)
	Create(ctx context.Context, f Fields) (*Certification, error)
	Update(ctx context.Context, id int64, f Fields) (*Certification, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

type certReq struct {
	Title         string   `json:"title"`
	Issuer        string   `json:"issuer"`
	Date          string   `json:"date"`
	CredentialURL string   `json:"credentialUrl"`
	Badge         string   `json:"badge"`
	Grade         string   `json:"grade"`
	Category      string   `json:"category"`
	Skills        []string `json:"skills"`
	Duration      string   `json:"duration"`
	Level         string   `json:"level"`
	Description   string   `json:"description"`
}

func (r *certReq) fields() (Fields, string) {
	r.Title = strings.TrimSpace(r.Title)
	r.Issuer = strings.TrimSpace(r.Issuer)

	if r.Title == "" {
		return Fields{}, "Title is required"
	}
	if r.Issuer == "" {
		return Fields{}, "Issuer is required"
	}

	if r.Skills == nil {
		r.Skills = []string{}
	}

	return Fields{
		Title:         r.Title,
		Issuer:        r.Issuer,
		Date:          r.Date,
		CredentialURL: r.CredentialURL,
		Badge:         r.Badge,
		Grade:         r.Grade,
		Category:      r.Category,
		Skills:        r.Skills,
		Duration:      r.Duration,
		Level:         r.Level,
		Description:   r.Description,
	}, ""
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve certifications"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
		return
	}

	ct, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve certification"})
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *Handler) create(c *gin.Context) {
	var req certReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, msg := req.fields()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ct, err := h.store.Create(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create certification"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "certification": ct})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
		return
	}

	var req certReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, msg := req.fields()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	ct, err := h.store.Update(c.Request.Context(), id, f)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update certification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "certification": ct})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Certification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Certification deleted"})
}
