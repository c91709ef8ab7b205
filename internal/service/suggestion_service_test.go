package service

import (
	"context"
	"testing"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"

	"marketing-calendar-be/pkg/suggest"

	"github.com/google/uuid"
)

func newSuggestionFixture(provider *scriptedProvider) ISuggestionService {
	store := &fakeStore{
		dates: []*entity.CommemorativeDate{
			{Id: uuid.New(), Date: dateOf("2026-07-10"), Description: "Dia da Pizza", Type: "commemorative", Niche1: "alimentação", Niche2: "gastronomia"},
			{Id: uuid.New(), Date: dateOf("2026-06-24"), Description: "São João", Type: "holiday", Niche1: "alimentação", Niche2: "turismo"},
			{Id: uuid.New(), Date: dateOf("2026-08-15"), Description: "Dia da Informática", Type: "commemorative", Niche1: "tecnologia"},
		},
	}
	ranker := suggest.NewRanker(provider)
	return NewSuggestionService(&fakeFactory{store: store}, ranker, noopLogger{})
}

func TestSuggestPipeline(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`[
			{"date": "2026-07-10", "relevance": "high", "reason": "food retail peak"},
			{"date": "2026-06-24", "relevance": "medium", "reason": "regional food festivities"},
			{"date": "1999-01-01", "relevance": "high", "reason": "made up"}
		]`,
	}}
	svc := newSuggestionFixture(provider)

	res, err := svc.Suggest(context.Background(), &dto.SuggestDatesRequest{Niches: []string{"food"}})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if len(res.Dates) != 2 {
		t.Fatalf("got %d dates, want 2 (hallucinated date must be dropped): %+v", len(res.Dates), res.Dates)
	}
	if res.Dates[0].Title != "Dia da Pizza" {
		t.Errorf("first date title = %q, want %q", res.Dates[0].Title, "Dia da Pizza")
	}
	if res.Dates[1].Category != suggest.CategoryHoliday {
		t.Errorf("São João category = %q, want holiday", res.Dates[1].Category)
	}
}

func TestSuggestCachesByNicheSet(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`[{"date": "2026-07-10", "relevance": "high", "reason": "food"}]`,
	}}
	svc := newSuggestionFixture(provider)

	if _, err := svc.Suggest(context.Background(), &dto.SuggestDatesRequest{Niches: []string{"food"}}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	// Same niche spelled differently must hit the cache.
	if _, err := svc.Suggest(context.Background(), &dto.SuggestDatesRequest{Niches: []string{"Food", "food"}}); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1 (cache hit)", provider.calls)
	}
}

func TestSuggestNoMatchingDates(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`[]`}}
	svc := newSuggestionFixture(provider)

	res, err := svc.Suggest(context.Background(), &dto.SuggestDatesRequest{Niches: []string{"automotive"}})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(res.Dates) != 0 {
		t.Fatalf("got %d dates, want 0", len(res.Dates))
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times for an empty candidate set, want 0", provider.calls)
	}
}
