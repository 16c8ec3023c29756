// analyses.go handles analysis history queries.
package database

import (
	"context"
	"fmt"

	"github.com/resume-ai/resume-ai-api/internal/models"
)

// CreateAnalysis inserts a new analysis record.
func (db *DB) CreateAnalysis(ctx context.Context, a *models.Analysis) error {
	query := `
		INSERT INTO analyses (filename, original_name, mode, status, score, analysis_text, suggestions, error_message, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	return db.QueryRowContext(ctx, query,
		a.Filename, a.OriginalName, a.Mode, a.Status,
		a.Score, a.AnalysisText, a.Suggestions, a.ErrorMessage, a.UserID,
	).Scan(&a.ID, &a.CreatedAt)
}

// GetAnalysis retrieves a single analysis by ID.
func (db *DB) GetAnalysis(ctx context.Context, id string) (*models.Analysis, error) {
	var a models.Analysis
	err := db.GetContext(ctx, &a, `SELECT * FROM analyses WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("analysis not found: %w", err)
	}
	return &a, nil
}

// ListAnalyses returns recent analyses, scoped to a user when userID is
// non-nil.
func (db *DB) ListAnalyses(ctx context.Context, limit int, userID *string) ([]models.Analysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var userValue interface{}
	if userID != nil {
		userValue = *userID
	}

	var analyses []models.Analysis
	err := db.SelectContext(ctx, &analyses,
		`SELECT * FROM analyses
		 WHERE ($1::uuid IS NULL OR user_id = $1)
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userValue, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// DeleteAnalysis removes an analysis by ID.
func (db *DB) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("analysis not found")
	}
	return nil
}
