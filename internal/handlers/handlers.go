// Package handlers contains the HTTP handler functions for the API.
//
// Related handlers hang off a single Handler struct that carries shared
// dependencies, so tests can construct one with whatever stubs they need.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resume-ai/resume-ai-api/internal/database"
	"github.com/resume-ai/resume-ai-api/internal/models"
	"github.com/resume-ai/resume-ai-api/internal/services/n8n"
)

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	DB             *database.DB
	N8N            *n8n.Client
	JWTSecret      string
	MaxUploadBytes int64
}

// NewHandler creates a handler with all dependencies.
func NewHandler(db *database.DB, client *n8n.Client, jwtSecret string, maxUploadBytes int64) *Handler {
	return &Handler{
		DB:             db,
		N8N:            client,
		JWTSecret:      jwtSecret,
		MaxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  "1.0.0",
		Database: dbStatus,
	})
}
