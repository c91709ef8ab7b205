package suggest

import (
	"context"
	"strings"
	"testing"

	"marketing-calendar-be/pkg/llm"

	"github.com/cenkalti/backoff/v4"
)

// scriptedProvider returns canned responses (or errors) in sequence.
type scriptedProvider struct {
	responses []scriptedResponse
	calls     int
	prompts   []string
}

type scriptedResponse struct {
	content string
	err     error
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if p.calls >= len(p.responses) {
		return "", &llm.APIError{StatusCode: 500, Body: "script exhausted"}
	}
	for _, m := range history {
		if m.Role == "user" {
			p.prompts = append(p.prompts, m.Content)
		}
	}
	r := p.responses[p.calls]
	p.calls++
	return r.content, r.err
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func noWait() backoff.BackOff {
	return &backoff.ZeroBackOff{}
}

var rankCandidates = []CandidateDate{
	{Date: "2025-05-11", Description: "Dia das Mães", Type: "holiday", Niches: []string{"moda"}},
}

const validAnswer = `[{"date":"2025-05-11","relevance":"high","reason":"key retail date"}]`

func TestRankerValidFirstTry(t *testing.T) {
	p := &scriptedProvider{responses: []scriptedResponse{{content: validAnswer}}}
	r := NewRanker(p, WithBackOff(noWait))

	ranked, err := r.Rank(context.Background(), rankCandidates, []string{"moda"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 || ranked[0].Relevance != RelevanceHigh {
		t.Errorf("ranked = %+v", ranked)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestRankerMalformedThenValid(t *testing.T) {
	p := &scriptedProvider{responses: []scriptedResponse{
		{content: "sorry, here you go: not json"},
		{content: `[{"date":"oops"}]`},
		{content: validAnswer},
	}}
	r := NewRanker(p, WithBackOff(noWait))

	ranked, err := r.Rank(context.Background(), rankCandidates, []string{"moda"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("ranked = %+v", ranked)
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want 3", p.calls)
	}
	// Retries after a validation failure must carry the stricter prompt.
	if !strings.Contains(p.prompts[1], "format_reminder") {
		t.Errorf("second prompt missing strict reminder:\n%s", p.prompts[1])
	}
	if strings.Contains(p.prompts[0], "format_reminder") {
		t.Errorf("first prompt should not carry the strict reminder")
	}
}

func TestRankerExhaustsAttempts(t *testing.T) {
	p := &scriptedProvider{responses: []scriptedResponse{
		{content: "not json"},
		{content: "still not json"},
		{content: "never json"},
	}}
	r := NewRanker(p, WithBackOff(noWait))

	_, err := r.Rank(context.Background(), rankCandidates, []string{"moda"})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want 3", p.calls)
	}
}

func TestRankerRetriesRateLimit(t *testing.T) {
	p := &scriptedProvider{responses: []scriptedResponse{
		{err: &llm.APIError{StatusCode: 429, Body: "rate limited"}},
		{content: validAnswer},
	}}
	r := NewRanker(p, WithBackOff(noWait))

	ranked, err := r.Rank(context.Background(), rankCandidates, []string{"moda"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("ranked = %+v", ranked)
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestRankerNonRateLimitAPIErrorIsFatal(t *testing.T) {
	p := &scriptedProvider{responses: []scriptedResponse{
		{err: &llm.APIError{StatusCode: 401, Body: "invalid api key"}},
		{content: validAnswer},
	}}
	r := NewRanker(p, WithBackOff(noWait))

	_, err := r.Rank(context.Background(), rankCandidates, []string{"moda"})
	if err == nil {
		t.Fatal("expected error for a 401 response")
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on a non-429 api error)", p.calls)
	}
}

func TestRankerEmptyCandidates(t *testing.T) {
	p := &scriptedProvider{}
	r := NewRanker(p, WithBackOff(noWait))

	if _, err := r.Rank(context.Background(), nil, []string{"moda"}); err == nil {
		t.Fatal("expected error for empty candidate list")
	}
	if p.calls != 0 {
		t.Errorf("provider should not be called, calls = %d", p.calls)
	}
}

func TestRankerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedProvider{responses: []scriptedResponse{
		{err: &llm.APIError{StatusCode: 429, Body: "rate limited"}},
	}}
	r := NewRanker(p, WithBackOff(noWait))

	if _, err := r.Rank(ctx, rankCandidates, []string{"moda"}); err == nil {
		t.Fatal("expected context error")
	}
}
