package n8n

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnalyzeStructuredResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var p payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if p.ResumeText != "John Doe" || !p.Adjust {
			t.Errorf("payload = %+v", p)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"analysis":"Strong resume","suggestions":["Add metrics"],"score":82,"rewritten_resume":"John Doe\nImproved"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, 5*time.Second).Analyze(context.Background(), "John Doe", true)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if resp.Analysis != "Strong resume" {
		t.Errorf("Analysis = %q", resp.Analysis)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != "Add metrics" {
		t.Errorf("Suggestions = %v", resp.Suggestions)
	}
	if resp.Score == nil || *resp.Score != 82 {
		t.Errorf("Score = %v", resp.Score)
	}
	if resp.RewrittenResume == "" {
		t.Error("RewrittenResume is empty")
	}
}

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantAnalysis string
		wantScore    *int
	}{
		{
			name:         "array wrapper",
			body:         `[{"analysis":"Looks good","score":70}]`,
			wantAnalysis: "Looks good",
			wantScore:    intptr(70),
		},
		{
			name:         "output wrapper with plain text",
			body:         `{"output":"Just some analysis text"}`,
			wantAnalysis: "Just some analysis text",
		},
		{
			name:         "output wrapper with JSON string",
			body:         `{"output":"{\"analysis\":\"Nested\",\"score\":55}"}`,
			wantAnalysis: "Nested",
			wantScore:    intptr(55),
		},
		{
			name:         "output wrapper with fenced JSON",
			body:         "{\"output\":\"```json\\n{\\\"analysis\\\":\\\"Fenced\\\"}\\n```\"}",
			wantAnalysis: "Fenced",
		},
		{
			name:         "array around output wrapper",
			body:         `[{"output":"From an agent node"}]`,
			wantAnalysis: "From an agent node",
		},
		{
			name:         "non-JSON body",
			body:         "plain text analysis",
			wantAnalysis: "plain text analysis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := normalize([]byte(tt.body), false)
			if resp.Analysis != tt.wantAnalysis {
				t.Errorf("Analysis = %q, want %q", resp.Analysis, tt.wantAnalysis)
			}
			if tt.wantScore != nil {
				if resp.Score == nil || *resp.Score != *tt.wantScore {
					t.Errorf("Score = %v, want %d", resp.Score, *tt.wantScore)
				}
			}
		})
	}
}

// TestNormalizeSuggestionsString: the workflow's primary structured shape
// carries suggestions as free text, not an array. It must still parse as
// a structured response instead of degrading to raw-body analysis.
func TestNormalizeSuggestionsString(t *testing.T) {
	body := `{"analysis":"Pontos fortes claros","suggestions":"Corrigir formatação das datas","score":7}`

	resp := normalize([]byte(body), false)
	if resp.Analysis != "Pontos fortes claros" {
		t.Errorf("Analysis = %q", resp.Analysis)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != "Corrigir formatação das datas" {
		t.Errorf("Suggestions = %v", resp.Suggestions)
	}
	if resp.Score == nil || *resp.Score != 7 {
		t.Errorf("Score = %v, want 7", resp.Score)
	}
}

// TestNormalizeAdjustOutputShape: in adjust mode the output-wrapper text
// is the rewritten résumé.
func TestNormalizeAdjustOutputShape(t *testing.T) {
	body := `{"output":"John Doe\nRewritten resume body"}`

	resp := normalize([]byte(body), true)
	if resp.RewrittenResume != "John Doe\nRewritten resume body" {
		t.Errorf("RewrittenResume = %q", resp.RewrittenResume)
	}
	if resp.Analysis != "John Doe\nRewritten resume body" {
		t.Errorf("Analysis = %q", resp.Analysis)
	}

	// Without adjust, the same shape carries no rewrite.
	if resp := normalize([]byte(body), false); resp.RewrittenResume != "" {
		t.Errorf("RewrittenResume without adjust = %q, want empty", resp.RewrittenResume)
	}
}

// TestNormalizeAdjustStructuredFallback: a structured response without
// rewritten_resume falls back to the analysis text in adjust mode.
func TestNormalizeAdjustStructuredFallback(t *testing.T) {
	body := `{"analysis":"Improved version of the resume","score":80}`

	resp := normalize([]byte(body), true)
	if resp.RewrittenResume != "Improved version of the resume" {
		t.Errorf("RewrittenResume = %q, want analysis fallback", resp.RewrittenResume)
	}

	explicit := `{"analysis":"notes","rewritten_resume":"the rewrite"}`
	if resp := normalize([]byte(explicit), true); resp.RewrittenResume != "the rewrite" {
		t.Errorf("explicit rewritten_resume overridden: %q", resp.RewrittenResume)
	}
}

// TestNormalizeOutputWithScore: a score can ride alongside the output
// wrapper.
func TestNormalizeOutputWithScore(t *testing.T) {
	resp := normalize([]byte(`{"output":"Analysis text","score":65}`), false)
	if resp.Score == nil || *resp.Score != 65 {
		t.Errorf("Score = %v, want 65", resp.Score)
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 5*time.Second).Analyze(context.Background(), "text", false)

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d", upErr.Status)
	}
}

func TestAnalyzeUnavailable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL, time.Second).Analyze(context.Background(), "text", false)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestAnalyzeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 20*time.Millisecond).Analyze(context.Background(), "text", false)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("error = %v, want ErrTimeout", err)
	}
}

func intptr(n int) *int { return &n }
