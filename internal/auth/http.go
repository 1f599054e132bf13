package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamzabencheikh/portfolio-backend/config"
)

type Handler struct {
	cfg config.AdminConfig
}

func NewHandler(cfg config.AdminConfig) *Handler {
	return &Handler{cfg: cfg}
}

// Register mounts /login and /verify. The login limiter is supplied by the
// caller so tests can swap it out.
func (h *Handler) Register(rg *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	rg.POST("/login", loginLimiter, h.login)
	rg.GET("/verify", h.verify)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	// Same generic rejection for a wrong email and a wrong password.
	if req.Email != h.cfg.Email {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	token, err := GenerateToken(req.Email, []byte(h.cfg.JWTSecret), h.cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"email": req.Email, "role": RoleAdmin},
	})
}

func (h *Handler) verify(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	if _, err := VerifyToken(parts[1], []byte(h.cfg.JWTSecret)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
