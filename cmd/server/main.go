// Package main is the entry point for the Resume AI API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resume-ai/resume-ai-api/internal/config"
	"github.com/resume-ai/resume-ai-api/internal/database"
	"github.com/resume-ai/resume-ai-api/internal/router"
	"github.com/resume-ai/resume-ai-api/internal/services/n8n"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Resume AI API %s starting...", Version)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, max_upload=%dMB", cfg.Port, cfg.GinMode, cfg.MaxFileSizeMB)

	os.Setenv("GIN_MODE", cfg.GinMode)

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	client := n8n.New(cfg.N8NWebhookURL, cfg.N8NTimeout())
	log.Printf("✅ n8n client configured: %s (timeout %s)", cfg.N8NWebhookURL, cfg.N8NTimeout())

	r := router.Setup(db, client, cfg)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Analysis requests block on the n8n workflow, so writes may
		// take as long as the webhook timeout.
		WriteTimeout: cfg.N8NTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Forced shutdown: %v", err)
	}

	log.Println("👋 Server stopped")
}
