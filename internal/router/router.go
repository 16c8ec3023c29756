// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/resume-ai/resume-ai-api/internal/config"
	"github.com/resume-ai/resume-ai-api/internal/database"
	"github.com/resume-ai/resume-ai-api/internal/handlers"
	"github.com/resume-ai/resume-ai-api/internal/middleware"
	"github.com/resume-ai/resume-ai-api/internal/services/n8n"
)

// Setup creates and configures the Gin router with all routes.
func Setup(db *database.DB, client *n8n.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := handlers.NewHandler(db, client, cfg.JWTSecret, cfg.MaxFileSizeBytes())

	// --- Public routes ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- Anonymous-friendly routes ---
	// Analyze and render work without an account; a valid token attaches
	// the run to the caller's history.
	open := r.Group("/api/v1")
	open.Use(middleware.OptionalJWT(db, cfg.JWTSecret))
	{
		open.POST("/resume/analyze", h.Analyze)
		open.POST("/resume/render", h.Render)
	}

	// --- JWT-protected routes ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(db, cfg.JWTSecret))
	{
		protected.GET("/auth/me", h.GetMe)
		protected.GET("/resume/analyses", h.ListAnalyses)
		protected.GET("/resume/analyses/:id", h.GetAnalysis)
		protected.DELETE("/resume/analyses/:id", h.DeleteAnalysis)
	}

	return r
}
