package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketing-calendar-be/internal/dto"
	"marketing-calendar-be/internal/model"
	"marketing-calendar-be/internal/pkg/logger"
	"marketing-calendar-be/internal/repository/unitofwork"
	"marketing-calendar-be/pkg/events"
	pktNats "marketing-calendar-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// notificationTemplate maps an event type code to the user-facing message.
type notificationTemplate struct {
	Title    string
	Template string
}

var notificationTemplates = map[string]notificationTemplate{
	events.TypeCampaignCreated: {
		Title:    "Nova campanha",
		Template: "A campanha \"{name}\" foi adicionada ao seu calendário.",
	},
	events.TypeCampaignBulkCreated: {
		Title:    "Campanhas criadas",
		Template: "{created} campanhas foram criadas a partir de datas comemorativas ({skipped} já existiam).",
	},
}

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the "events." prefix
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	template, ok := notificationTemplates[typeCode]
	if !ok {
		return nil
	}

	payload := event.Payload()
	uidStr, ok := payload["user_id"].(string)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No user_id in payload for event %s", typeCode), nil)
		return nil
	}
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		return nil
	}

	message := template.Template
	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		message = strings.ReplaceAll(message, placeholder, fmt.Sprintf("%v", v))
	}

	metaJSON, _ := json.Marshal(payload)

	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Title:     template.Title,
		Message:   message,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	return nil
}

func toNotificationResponse(notif *model.Notification) dto.NotificationResponse {
	res := dto.NotificationResponse{
		Id:        notif.ID,
		TypeCode:  notif.TypeCode,
		Title:     notif.Title,
		Message:   notif.Message,
		IsRead:    notif.IsRead,
		ReadAt:    notif.ReadAt,
		CreatedAt: notif.CreatedAt,
	}
	if len(notif.Metadata) > 0 {
		_ = json.Unmarshal(notif.Metadata, &res.Metadata)
	}
	return res
}

// GetNotifications fetches a user's notification inbox plus the unread count.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	unread, err := uow.NotificationRepository().CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, notif := range notifications {
		res.Notifications = append(res.Notifications, toNotificationResponse(notif))
	}
	return res, nil
}

// GetUnreadCount fetches the unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, userID)
}

// MarkAsRead marks one notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userID)
}
