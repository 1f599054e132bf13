package projects

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Store is what the handlers need from the repository. Tests provide stubs.
type Store interface {
	List(ctx context.Context) ([]Project, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Create(ctx context.Context, f Fields) (*Project, error)
	Update(ctx context.Context, id int64, f Fields) (*Project, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the public read-only routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

// RegisterAdmin mounts the authenticated CRUD routes.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

var validStatuses = map[string]bool{
	"Completed":   true,
	"In Progress": true,
	"Archived":    true,
}

var validProjectTypes = map[string]bool{
	"Personal":     true,
	"Academic":     true,
	"Professional": true,
	"Open Source":  true,
}

type projectReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	LiveURL        string   `json:"liveUrl"`
	GithubURL      string   `json:"githubUrl"`
	Image          string   `json:"image"`
	CompletionDate string   `json:"completionDate"`
	Status         string   `json:"status"`
	TeamSize       string   `json:"teamSize"`
	Duration       string   `json:"duration"`
	Client         string   `json:"client"`
	KeyFeatures    []string `json:"keyFeatures"`
	Challenges     string   `json:"challenges"`
	Results        string   `json:"results"`
	DemoVideoURL   string   `json:"demoVideoUrl"`
	ProjectType    string   `json:"projectType"`
}

func (r *projectReq) fields() (Fields, string) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return Fields{}, "Title is required"
	}

	if r.Status == "" {
		r.Status = "Completed"
	}
	if !validStatuses[r.Status] {
		return Fields{}, "Invalid status"
	}

	if r.ProjectType == "" {
		r.ProjectType = "Personal"
	}
	if !validProjectTypes[r.ProjectType] {
		return Fields{}, "Invalid project type"
	}

	if r.Technologies == nil {
		r.Technologies = []string{}
	}
	if r.KeyFeatures == nil {
		r.KeyFeatures = []string{}
	}

	return Fields{
		Title:          r.Title,
		Description:    r.Description,
		Technologies:   r.Technologies,
		LiveURL:        r.LiveURL,
		GithubURL:      r.GithubURL,
		Image:          r.Image,
		CompletionDate: r.CompletionDate,
		Status:         r.Status,
		TeamSize:       r.TeamSize,
		Duration:       r.Duration,
		Client:         r.Client,
		KeyFeatures:    r.KeyFeatures,
		Challenges:     r.Challenges,
		Results:        r.Results,
		DemoVideoURL:   r.DemoVideoURL,
		ProjectType:    r.ProjectType,
	}, ""
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, msg := req.fields()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p, err := h.store.Create(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	f, msg := req.fields()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	p, err := h.store.Update(c.Request.Context(), id, f)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}
