package bootstrap

import (
	"context"
	"log"

	"marketing-calendar-be/internal/config"
	"marketing-calendar-be/internal/controller"
	"marketing-calendar-be/internal/handler"
	"marketing-calendar-be/internal/pkg/logger"
	"marketing-calendar-be/internal/pkg/mailer"
	"marketing-calendar-be/internal/repository/unitofwork"
	"marketing-calendar-be/internal/service"
	"marketing-calendar-be/internal/websocket"
	"marketing-calendar-be/pkg/llm/factory"
	"marketing-calendar-be/pkg/suggest"

	pktNats "marketing-calendar-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const prefetchTopic = "PREFETCH_SUGGESTIONS"

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	OAuthController    controller.IOAuthController
	UserController     controller.IUserController
	DateController     controller.IDateController
	CalendarController controller.ICalendarController
	CampaignController controller.ICampaignController
	PhaseController    controller.IPhaseController
	ActionController   controller.IActionController
	ExportController   controller.IExportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmBaseURL := cfg.Ai.OpenAIBaseURL
	if cfg.Ai.LLMProvider == "ollama" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	ranker := suggest.NewRanker(llmProvider)

	// 2.5 Infrastructure (Moved up for dependency injection)
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	suggestionService := service.NewSuggestionService(uowFactory, ranker, sysLogger)

	publisherService := service.NewPublisherService(prefetchTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		prefetchTopic,
		suggestionService,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	userService := service.NewUserService(uowFactory, publisherService)

	calendarService := service.NewCalendarService(uowFactory)
	campaignService := service.NewCampaignService(uowFactory, natsPub, sysLogger)
	phaseService := service.NewPhaseService(uowFactory)
	actionService := service.NewActionService(uowFactory)
	exportService := service.NewExportService(uowFactory)

	// 4.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		UserController:      controller.NewUserController(userService),
		DateController:      controller.NewDateController(suggestionService),
		CalendarController:  controller.NewCalendarController(calendarService),
		CampaignController:  controller.NewCampaignController(campaignService),
		PhaseController:     controller.NewPhaseController(phaseService),
		ActionController:    controller.NewActionController(actionService),
		ExportController:    controller.NewExportController(exportService),

		ConsumerService: consumerService,
	}
}
