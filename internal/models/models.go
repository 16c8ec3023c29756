// Package models defines the data structures shared across the API:
// database rows, request bodies, and response payloads.
package models

import "time"

// AnalysisStatus tracks the lifecycle of an analysis record.
type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalysisMode distinguishes a plain analysis from an adjusted rewrite.
type AnalysisMode string

const (
	ModeAnalyze AnalysisMode = "analyze"
	ModeAdjust  AnalysisMode = "adjust"
)

// User is a registered account.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Analysis is one stored résumé analysis run.
type Analysis struct {
	ID           string         `db:"id" json:"id"`
	Filename     string         `db:"filename" json:"filename"`
	OriginalName string         `db:"original_name" json:"original_name"`
	Mode         AnalysisMode   `db:"mode" json:"mode"`
	Status       AnalysisStatus `db:"status" json:"status"`
	Score        *int           `db:"score" json:"score,omitempty"`
	AnalysisText string         `db:"analysis_text" json:"analysis_text"`
	Suggestions  string         `db:"suggestions" json:"suggestions,omitempty"`
	ErrorMessage *string        `db:"error_message" json:"error_message,omitempty"`
	UserID       *string        `db:"user_id" json:"user_id,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// RegisterRequest is the body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a signed token plus the account it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RenderRequest is the body for POST /api/v1/resume/render.
type RenderRequest struct {
	CandidateName string `json:"candidate_name"`
	ResumeText    string `json:"resume_text" binding:"required"`
}

// AnalysisResponse is the JSON result of POST /api/v1/resume/analyze.
type AnalysisResponse struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions,omitempty"`
	Score       *int     `json:"score,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// HealthResponse reports service and database health.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}
