package unitofwork

import (
	"context"

	"marketing-calendar-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CommemorativeDateRepository() contract.CommemorativeDateRepository
	CalendarRepository() contract.CalendarRepository
	CampaignRepository() contract.CampaignRepository
	PhaseRepository() contract.PhaseRepository
	ActionRepository() contract.ActionRepository
	NotificationRepository() contract.NotificationRepository
}
