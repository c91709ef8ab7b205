package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"marketing-calendar-be/pkg/suggest"

	"github.com/google/uuid"
)

type IActionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActionRequest) (*dto.ActionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateActionRequest) (*dto.ActionResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type actionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActionService(uowFactory unitofwork.RepositoryFactory) IActionService {
	return &actionService{uowFactory: uowFactory}
}

// requirePhase walks phase -> campaign to verify ownership.
func (s *actionService) requirePhase(ctx context.Context, uow unitofwork.UnitOfWork, userId, phaseId uuid.UUID) (*entity.Phase, error) {
	phase, err := uow.PhaseRepository().FindOne(ctx, specification.ByID{ID: phaseId})
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, errors.New("phase not found")
	}

	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: phase.CampaignId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, errors.New("phase not found")
	}
	return phase, nil
}

func (s *actionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateActionRequest) (*dto.ActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.requirePhase(ctx, uow, userId, req.PhaseId); err != nil {
		return nil, err
	}

	date, err := time.Parse(suggest.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	action := &entity.Action{
		Id:          uuid.New(),
		PhaseId:     req.PhaseId,
		Name:        req.Name,
		Date:        date,
		Description: optionalString(req.Description),
		Done:        false,
		CreatedAt:   time.Now(),
	}

	if err := uow.ActionRepository().Create(ctx, action); err != nil {
		return nil, err
	}

	res := toActionResponse(action)
	return &res, nil
}

func (s *actionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateActionRequest) (*dto.ActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	action, err := uow.ActionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, errors.New("action not found")
	}

	if _, err := s.requirePhase(ctx, uow, userId, action.PhaseId); err != nil {
		return nil, err
	}

	date, err := time.Parse(suggest.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	now := time.Now()
	action.Name = req.Name
	action.Date = date
	action.Description = optionalString(req.Description)
	action.Done = req.Done
	action.UpdatedAt = &now

	if err := uow.ActionRepository().Update(ctx, action); err != nil {
		return nil, err
	}

	res := toActionResponse(action)
	return &res, nil
}

func (s *actionService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	action, err := uow.ActionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if action == nil {
		return errors.New("action not found")
	}

	if _, err := s.requirePhase(ctx, uow, userId, action.PhaseId); err != nil {
		return err
	}

	return uow.ActionRepository().Delete(ctx, id)
}
