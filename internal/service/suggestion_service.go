package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/pkg/logger"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"marketing-calendar-be/pkg/suggest"

	"github.com/patrickmn/go-cache"
)

type ISuggestionService interface {
	GetAllDates(ctx context.Context) ([]*dto.CommemorativeDateResponse, error)
	Suggest(ctx context.Context, req *dto.SuggestDatesRequest) (*dto.SuggestDatesResponse, error)
}

type suggestionService struct {
	uowFactory unitofwork.RepositoryFactory
	ranker     *suggest.Ranker
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewSuggestionService(uowFactory unitofwork.RepositoryFactory, ranker *suggest.Ranker, logger logger.ILogger) ISuggestionService {
	return &suggestionService{
		uowFactory: uowFactory,
		ranker:     ranker,
		cache:      cache.New(1*time.Hour, 10*time.Minute),
		logger:     logger,
	}
}

func toCommemorativeDateResponse(date *entity.CommemorativeDate) *dto.CommemorativeDateResponse {
	return &dto.CommemorativeDateResponse{
		Id:          date.Id,
		Date:        date.Date.Format(suggest.DateLayout),
		Description: date.Description,
		Type:        date.Type,
		Niches:      date.NicheTags(),
	}
}

func (s *suggestionService) GetAllDates(ctx context.Context) ([]*dto.CommemorativeDateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	dates, err := uow.CommemorativeDateRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommemorativeDateResponse, 0, len(dates))
	for _, date := range dates {
		res = append(res, toCommemorativeDateResponse(date))
	}
	return res, nil
}

// cacheKey is the sorted translated niche set, so "fashion,food" and
// "food,fashion" share one entry.
func cacheKey(labels []string) string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// Suggest runs the full pipeline: translate niches, filter the date store,
// rank with the LLM, then reconcile the ranked output against the candidates
// so hallucinated dates never reach the caller.
func (s *suggestionService) Suggest(ctx context.Context, req *dto.SuggestDatesRequest) (*dto.SuggestDatesResponse, error) {
	labels := suggest.TranslateNiches(req.Niches)

	key := cacheKey(labels)
	if cached, found := s.cache.Get(key); found {
		return cached.(*dto.SuggestDatesResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.CommemorativeDateRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	all := make([]suggest.CandidateDate, 0, len(stored))
	for _, date := range stored {
		all = append(all, suggest.CandidateDate{
			Date:        date.Date.Format(suggest.DateLayout),
			Description: date.Description,
			Type:        date.Type,
			Niches:      date.NicheTags(),
		})
	}

	candidates := suggest.FilterByNiches(all, labels)
	if len(candidates) == 0 {
		return &dto.SuggestDatesResponse{Dates: []suggest.FormattedDate{}}, nil
	}

	ranked, err := s.ranker.Rank(ctx, candidates, labels)
	if err != nil {
		return nil, err
	}

	formatted, dropped := suggest.Reconcile(ranked, candidates, labels)
	if len(dropped) > 0 {
		s.logger.Warn("suggestion", "Dropped ranked dates not backed by the date store", map[string]interface{}{
			"niches":  labels,
			"dropped": len(dropped),
		})
	}

	res := &dto.SuggestDatesResponse{Dates: formatted}
	s.cache.Set(key, res, cache.DefaultExpiration)

	return res, nil
}
