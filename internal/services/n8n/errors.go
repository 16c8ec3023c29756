package n8n

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the webhook endpoint could not be reached.
	ErrUnavailable = errors.New("analysis service is unavailable")

	// ErrTimeout means the webhook did not answer within the configured
	// deadline. Workflow runs routinely take tens of seconds, so this is
	// distinct from unreachability.
	ErrTimeout = errors.New("analysis service timed out")
)

// UpstreamError reports a non-2xx response from the workflow engine.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("analysis service returned status %d: %s", e.Status, e.Body)
}
