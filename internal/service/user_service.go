package service

import (
	"context"
	"encoding/json"
	"fmt"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	UpdateNiches(ctx context.Context, userId uuid.UUID, req *dto.UpdateNichesRequest) error
}

type userService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IUserService {
	return &userService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func toUserProfileResponse(user *entity.User) dto.UserProfileResponse {
	avatarURL := ""
	if user.AvatarURL != nil {
		avatarURL = *user.AvatarURL
	}
	businessName := ""
	if user.BusinessName != nil {
		businessName = *user.BusinessName
	}
	niches := user.Niches
	if niches == nil {
		niches = []string{}
	}

	return dto.UserProfileResponse{
		Id:           user.Id,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         string(user.Role),
		Status:       string(user.Status),
		AvatarURL:    avatarURL,
		BusinessName: businessName,
		Niches:       niches,
		CreatedAt:    user.CreatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	res := toUserProfileResponse(user)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	user.FullName = req.FullName
	if req.BusinessName != "" {
		user.BusinessName = &req.BusinessName
	}
	return repo.Update(ctx, user)
}

func (s *userService) UpdateNiches(ctx context.Context, userId uuid.UUID, req *dto.UpdateNichesRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := repo.UpdateNiches(ctx, userId, req.Niches); err != nil {
		return err
	}

	// Warm the suggestion cache for the new niche set.
	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.PrefetchSuggestionsMessage{Niches: req.Niches})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			fmt.Printf("[WARN] Failed to publish prefetch message: %v\n", err)
		}
	}

	return nil
}
