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

type ICalendarService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CalendarResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.CalendarResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type calendarService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCalendarService(uowFactory unitofwork.RepositoryFactory) ICalendarService {
	return &calendarService{uowFactory: uowFactory}
}

func toCalendarResponse(calendar *entity.Calendar) *dto.CalendarResponse {
	return &dto.CalendarResponse{
		Id:        calendar.Id,
		Name:      calendar.Name,
		CreatedAt: calendar.CreatedAt,
		UpdatedAt: calendar.UpdatedAt,
	}
}

func (s *calendarService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendar := &entity.Calendar{
		Id:        uuid.New(),
		Name:      req.Name,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.CalendarRepository().Create(ctx, calendar); err != nil {
		return nil, err
	}

	return toCalendarResponse(calendar), nil
}

func (s *calendarService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.CalendarResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendars, err := uow.CalendarRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CalendarResponse, 0, len(calendars))
	for _, calendar := range calendars {
		res = append(res, toCalendarResponse(calendar))
	}
	return res, nil
}

func (s *calendarService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.CalendarResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendar, err := uow.CalendarRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		return nil, errors.New("calendar not found")
	}

	return toCalendarResponse(calendar), nil
}

func (s *calendarService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendar, err := uow.CalendarRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		return nil, errors.New("calendar not found")
	}

	now := time.Now()
	calendar.Name = req.Name
	calendar.UpdatedAt = &now

	if err := uow.CalendarRepository().Update(ctx, calendar); err != nil {
		return nil, err
	}

	return toCalendarResponse(calendar), nil
}

func (s *calendarService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calendar, err := uow.CalendarRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if calendar == nil {
		return errors.New("calendar not found")
	}

	return uow.CalendarRepository().Delete(ctx, id)
}
