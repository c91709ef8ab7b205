package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ValidationError marks a structurally invalid model answer. The ranker
// retries these with a stricter prompt instead of a transport backoff.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid model output: " + e.Reason
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ParseRanked parses and structurally validates the model's raw answer.
// Accepts either a bare JSON array or an object wrapping it in a "dates"
// field (models in JSON mode tend to emit the latter). Markdown code fences
// are stripped before parsing.
func ParseRanked(raw string) ([]RankedDate, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, invalid("empty response")
	}

	var ranked []RankedDate
	if err := json.Unmarshal([]byte(cleaned), &ranked); err != nil {
		// Looser mode: {"dates": [...]}
		var wrapper struct {
			Dates []RankedDate `json:"dates"`
		}
		if err2 := json.Unmarshal([]byte(cleaned), &wrapper); err2 != nil || wrapper.Dates == nil {
			return nil, invalid("not a JSON array: %v", err)
		}
		ranked = wrapper.Dates
	}

	if len(ranked) == 0 {
		return nil, invalid("empty array")
	}

	for i, r := range ranked {
		if r.Date == "" {
			return nil, invalid("item %d: missing date", i)
		}
		if _, err := time.Parse(DateLayout, r.Date); err != nil {
			return nil, invalid("item %d: bad date format %q", i, r.Date)
		}
		if !r.Relevance.Valid() {
			return nil, invalid("item %d: relevance %q not in {high, medium, low}", i, r.Relevance)
		}
	}

	return ranked, nil
}

func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
