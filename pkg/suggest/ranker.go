package suggest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-calendar-be/pkg/llm"

	"github.com/cenkalti/backoff/v4"
)

const defaultMaxAttempts = 3

// Ranker asks the LLM for a relevance judgment over the filtered candidates
// and enforces the structural contract on its answer.
//
// Failure policy: transport errors and 429s are retried after an exponential
// backoff; structurally invalid answers are retried with an augmented,
// stricter prompt. Both share one attempt ceiling. After the ceiling the call
// fails and no partial result is returned.
type Ranker struct {
	provider    llm.LLMProvider
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

type RankerOption func(*Ranker)

func WithMaxAttempts(n int) RankerOption {
	return func(r *Ranker) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithBackOff overrides the wait strategy between transport retries. Tests
// use this to avoid real sleeps.
func WithBackOff(factory func() backoff.BackOff) RankerOption {
	return func(r *Ranker) {
		r.newBackOff = factory
	}
}

func NewRanker(provider llm.LLMProvider, opts ...RankerOption) *Ranker {
	r := &Ranker{
		provider:    provider,
		maxAttempts: defaultMaxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 8 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank requests a relevance ranking for the candidates. The returned slice
// only guarantees structural validity; semantic cross-checking against the
// store is the reconciler's job.
func (r *Ranker) Rank(ctx context.Context, candidates []CandidateDate, labels []string) ([]RankedDate, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no candidate dates to rank")
	}

	wait := r.newBackOff()
	strict := false
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		builder := NewRankingBuilder(candidates, labels)
		if strict {
			builder.Strict()
		}

		history := []llm.Message{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: builder.Build()},
		}

		raw, err := r.provider.Chat(ctx, history,
			llm.WithTemperature(0),
			llm.WithJSONMode(),
		)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A non-429 API answer (bad key, bad request) will not get
			// better on a retry.
			var apiErr *llm.APIError
			if errors.As(err, &apiErr) && !llm.IsRateLimited(err) {
				return nil, err
			}
			// Transport failure or rate limit: back off before the next try.
			if err := sleepCtx(ctx, wait.NextBackOff()); err != nil {
				return nil, err
			}
			continue
		}

		ranked, err := ParseRanked(raw)
		if err != nil {
			lastErr = err
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				// Structurally invalid answer: repeat with the stricter prompt.
				strict = true
				continue
			}
			return nil, err
		}

		return ranked, nil
	}

	return nil, fmt.Errorf("ranking failed after %d attempts: %w", r.maxAttempts, lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
