package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hamzabencheikh/portfolio-backend/config"
	httpapi "github.com/hamzabencheikh/portfolio-backend/internal/api/http"
	"github.com/hamzabencheikh/portfolio-backend/internal/api/http/middleware"
	"github.com/hamzabencheikh/portfolio-backend/internal/auth"
	"github.com/hamzabencheikh/portfolio-backend/internal/certifications"
	"github.com/hamzabencheikh/portfolio-backend/internal/chat"
	"github.com/hamzabencheikh/portfolio-backend/internal/contact"
	"github.com/hamzabencheikh/portfolio-backend/internal/projects"
	"github.com/hamzabencheikh/portfolio-backend/internal/ratelimit"
	"github.com/hamzabencheikh/portfolio-backend/internal/stats"
	"github.com/hamzabencheikh/portfolio-backend/internal/testimonials"
	"github.com/hamzabencheikh/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	Config      *config.Config
	DB          *pgxpool.Pool
	MailSender  contact.Sender
	ChatClient  chat.Generator
	UploadStore uploads.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(cfg.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	// Uploaded images are served from the same process in the disk setup.
	if cfg.Upload.S3Bucket == "" {
		r.Static("/uploads", cfg.Upload.Dir)
	}

	limiters := buildLimiters(cfg.RateLimit)

	api := r.Group("/api")

	projectHandler := projects.NewHandler(projects.NewRepo(dep.DB))
	projectHandler.Register(api.Group("/projects"))

	certHandler := certifications.NewHandler(certifications.NewRepo(dep.DB))
	certHandler.Register(api.Group("/certifications"))

	testimonialHandler := testimonials.NewHandler(testimonials.NewRepo(dep.DB))
	testimonialHandler.Register(api.Group("/testimonials"), limiters.submit)

	contactHandler := contact.NewHandler(dep.MailSender)
	contactHandler.Register(api.Group("/contact"), limiters.contact)

	chatHandler := chat.NewHandler(dep.ChatClient)
	chatHandler.Register(api.Group("/chat"))

	authHandler := auth.NewHandler(cfg.Admin)
	authHandler.Register(api.Group("/auth"), limiters.login)

	secret := []byte(cfg.Admin.JWTSecret)

	admin := api.Group("/admin")
	admin.Use(auth.RequireAdmin(secret))

	projectHandler.RegisterAdmin(admin.Group("/projects"))
	certHandler.RegisterAdmin(admin.Group("/certifications"))
	testimonialHandler.RegisterAdmin(admin.Group("/testimonials"))

	statsHandler := stats.NewHandler(stats.NewRepo(dep.DB))
	statsHandler.Register(admin)

	uploadHandler := uploads.NewHandler(dep.UploadStore)
	uploadGroup := api.Group("/upload")
	uploadGroup.Use(auth.RequireAdmin(secret))
	uploadHandler.Register(uploadGroup)

	return r
}

type limiterSet struct {
	login   gin.HandlerFunc
	contact gin.HandlerFunc
	submit  gin.HandlerFunc
}

// buildLimiters picks redis-backed limiters when REDIS_ADDR is configured,
// in-process token buckets otherwise.
func buildLimiters(cfg config.RateLimitConfig) limiterSet {
	newLimiter := func(limit int) ratelimit.Limiter {
		return ratelimit.NewMemory(limit, cfg.Window)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		newLimiter = func(limit int) ratelimit.Limiter {
			return ratelimit.NewRedis(client, limit, cfg.Window)
		}
	}

	return limiterSet{
		login: ratelimit.Middleware("login", newLimiter(cfg.Login),
			"Too many login attempts. Please try again later."),
		contact: ratelimit.Middleware("contact", newLimiter(cfg.Contact),
			"Too many contact requests. Please try again in 15 minutes."),
		submit: ratelimit.Middleware("testimonials", newLimiter(cfg.Submit),
			"Too many testimonials submitted. Please try again later."),
	}
}
