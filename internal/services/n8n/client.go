// Package n8n is the client for the résumé analysis workflow running on
// an n8n instance. The workflow is invoked through a single webhook and
// answers in one of a few shapes depending on how its output node is
// wired, so the client normalizes every known shape into Response.
package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client calls the n8n analysis webhook.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// New builds a client for the given webhook URL. The timeout bounds the
// whole request; workflow runs take tens of seconds so callers should
// pass a generous value.
func New(webhookURL string, timeout time.Duration) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Response is the normalized analysis result.
type Response struct {
	Analysis        string      `json:"analysis"`
	Suggestions     Suggestions `json:"suggestions,omitempty"`
	Score           *int        `json:"score,omitempty"`
	RewrittenResume string      `json:"rewritten_resume,omitempty"`
}

// Suggestions tolerates both shapes the workflow emits: a JSON array of
// strings or one free-text string, which becomes a single-element list.
type Suggestions []string

func (s *Suggestions) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single = strings.TrimSpace(single); single != "" {
		*s = Suggestions{single}
	}
	return nil
}

type payload struct {
	ResumeText string `json:"resume_text"`
	Adjust     bool   `json:"adjust"`
}

// Analyze sends the résumé text to the workflow. With adjust set, the
// workflow also returns a rewritten résumé in RewrittenResume.
func (c *Client) Analyze(ctx context.Context, resumeText string, adjust bool) (*Response, error) {
	body, err := json.Marshal(payload{ResumeText: resumeText, Adjust: adjust})
	if err != nil {
		return nil, fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading webhook response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: truncate(string(raw), 500)}
	}

	return normalize(raw, adjust), nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// normalize maps the workflow's response onto Response. Seen shapes:
//
//  1. a structured object: {"analysis": ..., "suggestions": ..., ...}
//  2. a one-element array wrapping shape 1 or 3
//  3. an agent wrapper: {"output": "<text or JSON string>"}
//
// With adjust set, shape 3's text is also the rewritten résumé, and a
// structured response missing rewritten_resume falls back to its
// analysis text. Anything unrecognized becomes plain analysis text,
// which keeps the endpoint usable while a workflow is being reworked.
func normalize(raw []byte, adjust bool) *Response {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		if len(arr) == 0 {
			return &Response{}
		}
		raw = arr[0]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return &Response{Analysis: strings.TrimSpace(string(raw))}
	}

	out, hasOutput := obj["output"]
	_, hasAnalysis := obj["analysis"]
	if hasOutput && !hasAnalysis {
		var text string
		if err := json.Unmarshal(out, &text); err == nil {
			text = stripCodeFence(text)
			if r := tryStructured([]byte(text)); r != nil {
				return rewrittenFallback(r, adjust)
			}

			text = strings.TrimSpace(text)
			r := &Response{Analysis: text, Suggestions: Suggestions{text}}
			if score, ok := intField(obj, "score"); ok {
				r.Score = &score
			}
			if adjust {
				r.RewrittenResume = text
			}
			return r
		}
		if r := tryStructured(out); r != nil {
			return rewrittenFallback(r, adjust)
		}
	}

	if r := tryStructured(raw); r != nil {
		return rewrittenFallback(r, adjust)
	}
	return &Response{Analysis: strings.TrimSpace(string(raw))}
}

// rewrittenFallback fills RewrittenResume from the analysis text when
// adjust mode got a structured response without one.
func rewrittenFallback(r *Response, adjust bool) *Response {
	if adjust && r.RewrittenResume == "" {
		r.RewrittenResume = r.Analysis
	}
	return r
}

func intField(obj map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

func tryStructured(raw []byte) *Response {
	var r Response
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil
	}
	if r.Analysis == "" && len(r.Suggestions) == 0 && r.Score == nil && r.RewrittenResume == "" {
		return nil
	}
	return &r
}

// stripCodeFence removes a surrounding markdown code fence, which LLM
// nodes tend to wrap their JSON output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
