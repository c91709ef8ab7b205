package service

import (
	"context"
	"testing"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"

	"github.com/google/uuid"
)

func newCampaignFixture() (*fakeStore, ICampaignService, uuid.UUID, uuid.UUID) {
	userId := uuid.New()
	calendarId := uuid.New()

	store := &fakeStore{
		calendars: []*entity.Calendar{
			{Id: calendarId, Name: "Calendário 2026", UserId: userId},
		},
	}
	svc := NewCampaignService(&fakeFactory{store: store}, nil, noopLogger{})
	return store, svc, userId, calendarId
}

func TestCreateFromDates(t *testing.T) {
	store, svc, userId, calendarId := newCampaignFixture()

	req := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items: []dto.CreateFromDatesItem{
			{Date: "2026-05-10", Title: "Dia das Mães"},
			{Date: "2026-05-10", Title: "Dia das Mães"}, // in-batch duplicate
			{Date: "2026-06-12", Title: "Dia dos Namorados", Description: "Campanha de presentes"},
		},
	}

	res, err := svc.CreateFromDates(context.Background(), userId, req)
	if err != nil {
		t.Fatalf("CreateFromDates: %v", err)
	}
	if res.Created != 2 || res.Skipped != 1 {
		t.Fatalf("got created=%d skipped=%d, want 2/1", res.Created, res.Skipped)
	}
	if len(res.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(res.Results))
	}
	if res.Results[0].Status != "created" || res.Results[1].Status != "skipped" || res.Results[2].Status != "created" {
		t.Fatalf("unexpected statuses: %+v", res.Results)
	}
	if res.Results[0].Id == nil || res.Results[1].Id != nil {
		t.Fatalf("ids should be set only for created rows: %+v", res.Results)
	}
	if len(store.campaigns) != 2 {
		t.Fatalf("store holds %d campaigns, want 2", len(store.campaigns))
	}
	if store.committed != 1 {
		t.Fatalf("committed %d times, want 1", store.committed)
	}

	for _, campaign := range store.campaigns {
		if !campaign.IsFromCommemorative {
			t.Errorf("campaign %q not flagged as commemorative", campaign.Name)
		}
		if campaign.OriginCommemorativeDate == nil {
			t.Errorf("campaign %q missing origin date", campaign.Name)
		}
		if !campaign.StartDate.Equal(campaign.EndDate) {
			t.Errorf("campaign %q is not single-day", campaign.Name)
		}
	}
}

func TestCreateFromDatesSecondBatchSkipsAll(t *testing.T) {
	_, svc, userId, calendarId := newCampaignFixture()

	req := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items: []dto.CreateFromDatesItem{
			{Date: "2026-05-10", Title: "Dia das Mães"},
			{Date: "2026-06-12", Title: "Dia dos Namorados"},
		},
	}

	if _, err := svc.CreateFromDates(context.Background(), userId, req); err != nil {
		t.Fatalf("first batch: %v", err)
	}

	res, err := svc.CreateFromDates(context.Background(), userId, req)
	if err != nil {
		t.Fatalf("second batch: %v", err)
	}
	if res.Created != 0 || res.Skipped != 2 {
		t.Fatalf("got created=%d skipped=%d, want 0/2", res.Created, res.Skipped)
	}
}

func TestCreateFromDatesSameNameDifferentDate(t *testing.T) {
	store, svc, userId, calendarId := newCampaignFixture()

	first := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items:      []dto.CreateFromDatesItem{{Date: "2026-03-08", Title: "Dia da Mulher"}},
	}
	second := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items:      []dto.CreateFromDatesItem{{Date: "2027-03-08", Title: "Dia da Mulher"}},
	}

	if _, err := svc.CreateFromDates(context.Background(), userId, first); err != nil {
		t.Fatalf("first: %v", err)
	}
	res, err := svc.CreateFromDates(context.Background(), userId, second)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if res.Created != 1 {
		t.Fatalf("same name on a different date must create, got created=%d", res.Created)
	}
	if len(store.campaigns) != 2 {
		t.Fatalf("store holds %d campaigns, want 2", len(store.campaigns))
	}
}

func TestCreateFromDatesRejectsForeignCalendar(t *testing.T) {
	_, svc, _, calendarId := newCampaignFixture()

	req := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items:      []dto.CreateFromDatesItem{{Date: "2026-05-10", Title: "Dia das Mães"}},
	}

	if _, err := svc.CreateFromDates(context.Background(), uuid.New(), req); err == nil {
		t.Fatal("expected error for a calendar owned by another user")
	}
}

func TestCreateFromDatesInvalidDate(t *testing.T) {
	store, svc, userId, calendarId := newCampaignFixture()

	req := &dto.CreateFromDatesRequest{
		CalendarId: calendarId,
		Items:      []dto.CreateFromDatesItem{{Date: "10/05/2026", Title: "Dia das Mães"}},
	}

	if _, err := svc.CreateFromDates(context.Background(), userId, req); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if store.committed != 0 {
		t.Fatalf("committed %d times on failure, want 0", store.committed)
	}
}

func TestCampaignCreateValidatesDateRange(t *testing.T) {
	_, svc, userId, calendarId := newCampaignFixture()

	req := &dto.CreateCampaignRequest{
		CalendarId: calendarId,
		Name:       "Lançamento",
		StartDate:  "2026-06-10",
		EndDate:    "2026-06-01",
	}

	if _, err := svc.Create(context.Background(), userId, req); err == nil {
		t.Fatal("expected error when end date precedes start date")
	}
}
