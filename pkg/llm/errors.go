package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the HTTP status of a failed provider call so callers can
// distinguish rate limiting from hard failures.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm api error: status %d, body: %s", e.StatusCode, e.Body)
}

// IsRateLimited reports whether err is a provider 429.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
