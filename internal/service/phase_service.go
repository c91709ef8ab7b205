package service

import (
	"context"
	"errors"
	"time"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPhaseService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type phaseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPhaseService(uowFactory unitofwork.RepositoryFactory) IPhaseService {
	return &phaseService{uowFactory: uowFactory}
}

// requireCampaign checks the parent campaign belongs to the caller.
func (s *phaseService) requireCampaign(ctx context.Context, uow unitofwork.UnitOfWork, userId, campaignId uuid.UUID) (*entity.Campaign, error) {
	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: campaignId},
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

func (s *phaseService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.requireCampaign(ctx, uow, userId, req.CampaignId); err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	phase := &entity.Phase{
		Id:         uuid.New(),
		CampaignId: req.CampaignId,
		Name:       req.Name,
		StartDate:  start,
		EndDate:    end,
		SortOrder:  req.SortOrder,
		CreatedAt:  time.Now(),
	}

	if err := uow.PhaseRepository().Create(ctx, phase); err != nil {
		return nil, err
	}

	res := toPhaseResponse(phase, nil)
	return &res, nil
}

func (s *phaseService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	phase, err := uow.PhaseRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, errors.New("phase not found")
	}

	if _, err := s.requireCampaign(ctx, uow, userId, phase.CampaignId); err != nil {
		return nil, err
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	phase.Name = req.Name
	phase.StartDate = start
	phase.EndDate = end
	phase.SortOrder = req.SortOrder
	phase.UpdatedAt = &now

	if err := uow.PhaseRepository().Update(ctx, phase); err != nil {
		return nil, err
	}

	res := toPhaseResponse(phase, nil)
	return &res, nil
}

func (s *phaseService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	phase, err := uow.PhaseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if phase == nil {
		return errors.New("phase not found")
	}

	if _, err := s.requireCampaign(ctx, uow, userId, phase.CampaignId); err != nil {
		return err
	}

	return uow.PhaseRepository().Delete(ctx, id)
}
