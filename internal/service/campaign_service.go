package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/pkg/logger"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"marketing-calendar-be/pkg/events"
	pktNats "marketing-calendar-be/pkg/nats"
	"marketing-calendar-be/pkg/suggest"

	"github.com/google/uuid"
)

type ICampaignService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetAllByCalendar(ctx context.Context, userId, calendarId uuid.UUID) ([]*dto.CampaignResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.CampaignDetailResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	CreateFromDates(ctx context.Context, userId uuid.UUID, req *dto.CreateFromDatesRequest) (*dto.CreateFromDatesResponse, error)
}

type campaignService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCampaignService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, logger logger.ILogger) ICampaignService {
	return &campaignService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func toCampaignResponse(campaign *entity.Campaign) *dto.CampaignResponse {
	res := &dto.CampaignResponse{
		Id:                  campaign.Id,
		CalendarId:          campaign.CalendarId,
		Name:                campaign.Name,
		StartDate:           campaign.StartDate.Format(suggest.DateLayout),
		EndDate:             campaign.EndDate.Format(suggest.DateLayout),
		IsFromCommemorative: campaign.IsFromCommemorative,
		CreatedAt:           campaign.CreatedAt,
		UpdatedAt:           campaign.UpdatedAt,
	}
	if campaign.Objective != nil {
		res.Objective = *campaign.Objective
	}
	if campaign.Description != nil {
		res.Description = *campaign.Description
	}
	if campaign.Offer != nil {
		res.Offer = *campaign.Offer
	}
	if campaign.OriginCommemorativeDate != nil {
		res.OriginCommemorativeDate = campaign.OriginCommemorativeDate.Format(suggest.DateLayout)
	}
	return res
}

func toPhaseResponse(phase *entity.Phase, actions []*entity.Action) dto.PhaseResponse {
	res := dto.PhaseResponse{
		Id:         phase.Id,
		CampaignId: phase.CampaignId,
		Name:       phase.Name,
		StartDate:  phase.StartDate.Format(suggest.DateLayout),
		EndDate:    phase.EndDate.Format(suggest.DateLayout),
		SortOrder:  phase.SortOrder,
		CreatedAt:  phase.CreatedAt,
		UpdatedAt:  phase.UpdatedAt,
	}
	for _, action := range actions {
		res.Actions = append(res.Actions, toActionResponse(action))
	}
	return res
}

func toActionResponse(action *entity.Action) dto.ActionResponse {
	res := dto.ActionResponse{
		Id:        action.Id,
		PhaseId:   action.PhaseId,
		Name:      action.Name,
		Date:      action.Date.Format(suggest.DateLayout),
		Done:      action.Done,
		CreatedAt: action.CreatedAt,
		UpdatedAt: action.UpdatedAt,
	}
	if action.Description != nil {
		res.Description = *action.Description
	}
	return res
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(suggest.DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %v", err)
	}
	end, err := time.Parse(suggest.DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %v", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must not be before start date")
	}
	return start, end, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func (s *campaignService) requireCalendar(ctx context.Context, uow unitofwork.UnitOfWork, userId, calendarId uuid.UUID) error {
	calendar, err := uow.CalendarRepository().FindOne(ctx,
		specification.ByID{ID: calendarId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if calendar == nil {
		return errors.New("calendar not found")
	}
	return nil
}

func (s *campaignService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireCalendar(ctx, uow, userId, req.CalendarId); err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	campaign := &entity.Campaign{
		Id:          uuid.New(),
		Name:        req.Name,
		StartDate:   start,
		EndDate:     end,
		Objective:   optionalString(req.Objective),
		Description: optionalString(req.Description),
		Offer:       optionalString(req.Offer),
		UserId:      userId,
		CalendarId:  req.CalendarId,
		CreatedAt:   time.Now(),
	}

	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.publishCampaignCreated(ctx, campaign)

	return toCampaignResponse(campaign), nil
}

func (s *campaignService) GetAllByCalendar(ctx context.Context, userId, calendarId uuid.UUID) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireCalendar(ctx, uow, userId, calendarId); err != nil {
		return nil, err
	}

	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.ByCalendarID{CalendarID: calendarId},
		specification.OrderBy{Field: "start_date", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		res = append(res, toCampaignResponse(campaign))
	}
	return res, nil
}

func (s *campaignService) findOwnedCampaign(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, errors.New("campaign not found")
	}
	return campaign, nil
}

func (s *campaignService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.CampaignDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := s.findOwnedCampaign(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	phases, err := uow.PhaseRepository().FindAll(ctx,
		specification.ByCampaignID{CampaignID: campaign.Id},
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.CampaignDetailResponse{
		CampaignResponse: *toCampaignResponse(campaign),
		Phases:           make([]dto.PhaseResponse, 0, len(phases)),
	}

	for _, phase := range phases {
		actions, err := uow.ActionRepository().FindAll(ctx,
			specification.ByPhaseID{PhaseID: phase.Id},
			specification.OrderBy{Field: "date", Desc: false},
		)
		if err != nil {
			return nil, err
		}
		res.Phases = append(res.Phases, toPhaseResponse(phase, actions))
	}

	return res, nil
}

func (s *campaignService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := s.findOwnedCampaign(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	campaign.Name = req.Name
	campaign.StartDate = start
	campaign.EndDate = end
	campaign.Objective = optionalString(req.Objective)
	campaign.Description = optionalString(req.Description)
	campaign.Offer = optionalString(req.Offer)
	campaign.UpdatedAt = &now

	if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

func (s *campaignService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedCampaign(ctx, uow, userId, id); err != nil {
		return err
	}

	return uow.CampaignRepository().Delete(ctx, id)
}

// CreateFromDates turns accepted suggestions into single-day campaigns. A
// campaign keyed by (origin date, name) is created at most once per calendar:
// duplicates inside the batch and rows already in the calendar are reported
// as skipped, never as errors. The whole batch runs in one transaction so a
// concurrent identical batch cannot slip duplicate rows past the check.
func (s *campaignService) CreateFromDates(ctx context.Context, userId uuid.UUID, req *dto.CreateFromDatesRequest) (*dto.CreateFromDatesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireCalendar(ctx, uow, userId, req.CalendarId); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	res := &dto.CreateFromDatesResponse{
		Results: make([]dto.CreateFromDatesResult, 0, len(req.Items)),
	}
	seen := make(map[string]bool, len(req.Items))

	for _, item := range req.Items {
		date, err := time.Parse(suggest.DateLayout, item.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %v", item.Date, err)
		}

		key := item.Date + "|" + item.Title
		if seen[key] {
			res.Skipped++
			res.Results = append(res.Results, dto.CreateFromDatesResult{
				Date: item.Date, Title: item.Title, Status: "skipped",
			})
			continue
		}
		seen[key] = true

		existing, err := uow.CampaignRepository().FindOne(ctx,
			specification.ByCalendarID{CalendarID: req.CalendarId},
			specification.ByName{Name: item.Title},
			specification.ByOriginDate{Date: date},
			specification.FromCommemorative{},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			res.Skipped++
			res.Results = append(res.Results, dto.CreateFromDatesResult{
				Date: item.Date, Title: item.Title, Status: "skipped",
			})
			continue
		}

		campaign := &entity.Campaign{
			Id:                      uuid.New(),
			Name:                    item.Title,
			StartDate:               date,
			EndDate:                 date,
			Description:             optionalString(item.Description),
			OriginCommemorativeDate: &date,
			IsFromCommemorative:     true,
			UserId:                  userId,
			CalendarId:              req.CalendarId,
			CreatedAt:               time.Now(),
		}

		if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
			return nil, err
		}

		id := campaign.Id
		res.Created++
		res.Results = append(res.Results, dto.CreateFromDatesResult{
			Date: item.Date, Title: item.Title, Status: "created", Id: &id,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("campaign", "Auto-created campaigns from commemorative dates", map[string]interface{}{
		"calendar_id": req.CalendarId,
		"created":     res.Created,
		"skipped":     res.Skipped,
	})

	if s.eventPublisher != nil {
		event := events.NewCampaignBulkCreated(req.CalendarId.String(), userId.String(), res.Created, res.Skipped)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("campaign", "Failed to publish bulk creation event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return res, nil
}

func (s *campaignService) publishCampaignCreated(ctx context.Context, campaign *entity.Campaign) {
	if s.eventPublisher == nil {
		return
	}
	event := events.NewCampaignCreated(
		campaign.Id.String(),
		campaign.CalendarId.String(),
		campaign.UserId.String(),
		campaign.Name,
		campaign.IsFromCommemorative,
	)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("campaign", "Failed to publish campaign created event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
