// resume.go handles the résumé analysis and PDF rendering endpoints.
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resume-ai/resume-ai-api/internal/middleware"
	"github.com/resume-ai/resume-ai-api/internal/models"
	"github.com/resume-ai/resume-ai-api/internal/services/extract"
	"github.com/resume-ai/resume-ai-api/internal/services/n8n"
	"github.com/resume-ai/resume-ai-api/internal/services/resume"
)

// Analyze accepts a résumé upload, runs it through the n8n workflow, and
// answers with either the analysis JSON or, in adjust mode, the rewritten
// résumé rendered as a PDF.
// POST /api/v1/resume/analyze  (multipart: file, adjust)
func (h *Handler) Analyze(c *gin.Context) {
	// Cap the whole request body before touching the multipart reader.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "file_too_large",
				Message: fmt.Sprintf("File exceeds the %d MB limit", h.MaxUploadBytes>>20),
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "Multipart field 'file' is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file",
			Message: "Could not open uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
				Error:   "file_too_large",
				Message: fmt.Sprintf("File exceeds the %d MB limit", h.MaxUploadBytes>>20),
				Code:    http.StatusRequestEntityTooLarge,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file",
			Message: "Could not read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	text, err := extract.FromUpload(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "extraction_failed",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	adjust := c.PostForm("adjust") == "true"
	mode := models.ModeAnalyze
	if adjust {
		mode = models.ModeAdjust
	}

	record := &models.Analysis{
		Filename:     uuid.NewString() + filepath.Ext(fileHeader.Filename),
		OriginalName: fileHeader.Filename,
		Mode:         mode,
		Status:       models.StatusCompleted,
	}
	if user := middleware.GetUser(c); user != nil {
		record.UserID = &user.ID
	}

	result, err := h.N8N.Analyze(c.Request.Context(), text, adjust)
	if err != nil {
		h.saveFailedAnalysis(c, record, err)
		status, code := classifyAnalysisError(err)
		c.JSON(status, models.ErrorResponse{
			Error:   code,
			Message: err.Error(),
			Code:    status,
		})
		return
	}

	record.AnalysisText = result.Analysis
	record.Suggestions = strings.Join(result.Suggestions, "\n")
	record.Score = result.Score
	if err := h.DB.CreateAnalysis(c.Request.Context(), record); err != nil {
		// History is best effort; the analysis itself already succeeded.
		log.Printf("⚠️ Failed to save analysis record: %v", err)
	}

	if adjust && result.RewrittenResume != "" {
		// The title name comes from the uploaded text, not the rewrite:
		// the workflow may reorder or retitle the rewritten version.
		h.servePDF(c, candidateName(text), result.RewrittenResume, "resume-adjusted.pdf")
		return
	}

	c.JSON(http.StatusOK, models.AnalysisResponse{
		Analysis:    result.Analysis,
		Suggestions: result.Suggestions,
		Score:       result.Score,
	})
}

// Render turns raw résumé text into a formatted PDF without calling the
// analysis workflow.
// POST /api/v1/resume/render
func (h *Handler) Render(c *gin.Context) {
	var req models.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "resume_text is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	name := req.CandidateName
	if name == "" {
		name = candidateName(req.ResumeText)
	}
	h.servePDF(c, name, req.ResumeText, "resume.pdf")
}

// ListAnalyses returns the authenticated user's analysis history.
// GET /api/v1/resume/analyses
func (h *Handler) ListAnalyses(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	analyses, err := h.DB.ListAnalyses(c.Request.Context(), 50, &user.ID)
	if err != nil {
		log.Printf("❌ Failed to list analyses: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list analyses",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "count": len(analyses)})
}

// GetAnalysis returns one analysis, if it belongs to the caller.
// GET /api/v1/resume/analyses/:id
func (h *Handler) GetAnalysis(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	analysis, err := h.DB.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Analysis not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	if analysis.UserID == nil || *analysis.UserID != user.ID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Analysis not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// DeleteAnalysis removes one analysis, if it belongs to the caller.
// DELETE /api/v1/resume/analyses/:id
func (h *Handler) DeleteAnalysis(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	analysis, err := h.DB.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil || analysis.UserID == nil || *analysis.UserID != user.ID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Analysis not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	if err := h.DB.DeleteAnalysis(c.Request.Context(), analysis.ID); err != nil {
		log.Printf("❌ Failed to delete analysis: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete analysis",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// servePDF renders the text and streams it as an attachment.
func (h *Handler) servePDF(c *gin.Context, candidateName, resumeText, downloadName string) {
	var buf bytes.Buffer
	if err := resume.Generate(candidateName, resumeText, &buf); err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "pdf_generation_failed",
			Message: "Could not generate the PDF",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *Handler) saveFailedAnalysis(c *gin.Context, record *models.Analysis, cause error) {
	record.Status = models.StatusFailed
	msg := cause.Error()
	record.ErrorMessage = &msg
	if err := h.DB.CreateAnalysis(c.Request.Context(), record); err != nil {
		log.Printf("⚠️ Failed to save failed-analysis record: %v", err)
	}
}

// classifyAnalysisError maps n8n client errors onto HTTP gateway codes.
func classifyAnalysisError(err error) (int, string) {
	switch {
	case errors.Is(err, n8n.ErrTimeout):
		return http.StatusGatewayTimeout, "analysis_timeout"
	case errors.Is(err, n8n.ErrUnavailable):
		return http.StatusBadGateway, "analysis_unavailable"
	default:
		var upErr *n8n.UpstreamError
		if errors.As(err, &upErr) {
			return http.StatusBadGateway, "analysis_failed"
		}
		return http.StatusInternalServerError, "server_error"
	}
}

// maxCandidateNameLen is the cutoff above which a first line is clearly
// not a person's name.
const maxCandidateNameLen = 60

// candidateName derives the PDF title name from résumé text: the first
// non-empty line, unless it is too long to plausibly be a name.
func candidateName(text string) string {
	line := firstLine(text)
	if utf8.RuneCountInString(line) >= maxCandidateNameLen {
		return "Candidate"
	}
	return line
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "Candidate"
}
