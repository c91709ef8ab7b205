package suggest

import (
	"errors"
	"testing"
)

func TestParseRanked(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "bare array",
			raw:       `[{"date":"2025-05-11","relevance":"high","reason":"major retail date"}]`,
			wantCount: 1,
		},
		{
			name:      "dates wrapper object",
			raw:       `{"dates":[{"date":"2025-05-11","relevance":"medium","reason":"ok"}]}`,
			wantCount: 1,
		},
		{
			name:      "markdown fenced",
			raw:       "```json\n[{\"date\":\"2025-05-11\",\"relevance\":\"low\",\"reason\":\"minor\"}]\n```",
			wantCount: 1,
		},
		{
			name:    "malformed json",
			raw:     `[{"date": "2025-05-11",`,
			wantErr: true,
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "   ",
			wantErr: true,
		},
		{
			name:    "missing date",
			raw:     `[{"relevance":"high","reason":"x"}]`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			raw:     `[{"date":"11/05/2025","relevance":"high","reason":"x"}]`,
			wantErr: true,
		},
		{
			name:    "impossible calendar date",
			raw:     `[{"date":"2025-02-31","relevance":"high","reason":"x"}]`,
			wantErr: true,
		},
		{
			name:    "relevance outside enum",
			raw:     `[{"date":"2025-05-11","relevance":"critical","reason":"x"}]`,
			wantErr: true,
		},
		{
			name:    "not an array or wrapper",
			raw:     `{"foo": "bar"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanked(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error should be a *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("got %d items, want %d", len(got), tt.wantCount)
			}
		})
	}
}
