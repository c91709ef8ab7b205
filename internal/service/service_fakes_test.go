package service

import (
	"context"
	"sort"
	"time"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/contract"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"marketing-calendar-be/pkg/llm"

	"github.com/google/uuid"
)

// fakeStore backs the fake repositories with plain slices so service tests
// run without a database.
type fakeStore struct {
	calendars []*entity.Calendar
	campaigns []*entity.Campaign
	dates     []*entity.CommemorativeDate

	begun      int
	committed  int
	rolledBack int
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.store.begun++
	return nil
}

func (u *fakeUow) Commit() error {
	u.store.committed++
	return nil
}

func (u *fakeUow) Rollback() error {
	u.store.rolledBack++
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository { return nil }
func (u *fakeUow) CommemorativeDateRepository() contract.CommemorativeDateRepository {
	return &fakeDateRepo{store: u.store}
}
func (u *fakeUow) CalendarRepository() contract.CalendarRepository {
	return &fakeCalendarRepo{store: u.store}
}
func (u *fakeUow) CampaignRepository() contract.CampaignRepository {
	return &fakeCampaignRepo{store: u.store}
}
func (u *fakeUow) PhaseRepository() contract.PhaseRepository               { return nil }
func (u *fakeUow) ActionRepository() contract.ActionRepository             { return nil }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return nil }

type fakeCalendarRepo struct {
	store *fakeStore
}

func calendarMatches(c *entity.Calendar, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeCalendarRepo) Create(ctx context.Context, calendar *entity.Calendar) error {
	r.store.calendars = append(r.store.calendars, calendar)
	return nil
}

func (r *fakeCalendarRepo) Update(ctx context.Context, calendar *entity.Calendar) error { return nil }

func (r *fakeCalendarRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeCalendarRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Calendar, error) {
	for _, c := range r.store.calendars {
		if calendarMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCalendarRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Calendar, error) {
	var found []*entity.Calendar
	for _, c := range r.store.calendars {
		if calendarMatches(c, specs) {
			found = append(found, c)
		}
	}
	return found, nil
}

func (r *fakeCalendarRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeCampaignRepo struct {
	store *fakeStore
}

func campaignMatches(c *entity.Campaign, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != s.UserID {
				return false
			}
		case specification.ByCalendarID:
			if c.CalendarId != s.CalendarID {
				return false
			}
		case specification.ByName:
			if c.Name != s.Name {
				return false
			}
		case specification.ByOriginDate:
			if c.OriginCommemorativeDate == nil || !c.OriginCommemorativeDate.Equal(s.Date) {
				return false
			}
		case specification.FromCommemorative:
			if !c.IsFromCommemorative {
				return false
			}
		case specification.DateRangeOverlap:
			if c.StartDate.After(s.To) || c.EndDate.Before(s.From) {
				return false
			}
		}
	}
	return true
}

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *entity.Campaign) error {
	r.store.campaigns = append(r.store.campaigns, campaign)
	return nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, campaign *entity.Campaign) error { return nil }

func (r *fakeCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.campaigns[:0]
	for _, c := range r.store.campaigns {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.store.campaigns = kept
	return nil
}

func (r *fakeCampaignRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error) {
	for _, c := range r.store.campaigns {
		if campaignMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCampaignRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error) {
	var found []*entity.Campaign
	for _, c := range r.store.campaigns {
		if campaignMatches(c, specs) {
			found = append(found, c)
		}
	}
	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "start_date" {
			sort.SliceStable(found, func(i, j int) bool {
				if order.Desc {
					return found[j].StartDate.Before(found[i].StartDate)
				}
				return found[i].StartDate.Before(found[j].StartDate)
			})
		}
	}
	return found, nil
}

func (r *fakeCampaignRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeDateRepo struct {
	store *fakeStore
}

func (r *fakeDateRepo) Create(ctx context.Context, date *entity.CommemorativeDate) error {
	r.store.dates = append(r.store.dates, date)
	return nil
}

func (r *fakeDateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CommemorativeDate, error) {
	if len(r.store.dates) == 0 {
		return nil, nil
	}
	return r.store.dates[0], nil
}

func (r *fakeDateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CommemorativeDate, error) {
	found := make([]*entity.CommemorativeDate, len(r.store.dates))
	copy(found, r.store.dates)
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Date.Before(found[j].Date)
	})
	return found, nil
}

func (r *fakeDateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.dates)), nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// scriptedProvider replays canned answers and counts calls.
type scriptedProvider struct {
	responses []string
	calls     int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	idx := p.calls
	p.calls++
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	return p.responses[idx], nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

func dateOf(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}
