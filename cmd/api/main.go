package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hamzabencheikh/portfolio-backend/config"
	"github.com/hamzabencheikh/portfolio-backend/internal/bootstrap"
	"github.com/hamzabencheikh/portfolio-backend/internal/chat"
	"github.com/hamzabencheikh/portfolio-backend/internal/contact"
	"github.com/hamzabencheikh/portfolio-backend/internal/maintenance"
	"github.com/hamzabencheikh/portfolio-backend/internal/storage/postgres"
	"github.com/hamzabencheikh/portfolio-backend/internal/testimonials"
	"github.com/hamzabencheikh/portfolio-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	var uploadStore uploads.Store
	if cfg.Upload.S3Bucket != "" {
		uploadStore, err = uploads.NewS3Store(ctx, cfg.Upload)
		if err != nil {
			log.Fatalf("s3 store: %v", err)
		}
	} else {
		uploadStore = uploads.NewDiskStore(cfg.Upload.Dir)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config:      cfg,
		DB:          pool,
		MailSender:  contact.NewSendGridSender(cfg.Mail),
		ChatClient:  chat.NewGemini(cfg.Chat),
		UploadStore: uploadStore,
	})

	scheduler := maintenance.NewScheduler(testimonials.NewRepo(pool))
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
