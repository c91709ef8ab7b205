package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"marketing-calendar-be/internal/entity"
	"marketing-calendar-be/internal/repository/specification"
	"marketing-calendar-be/internal/repository/unitofwork"
	"marketing-calendar-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CampaignRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Commemorative Date Store", func(t *testing.T) {
		count, err := uow.CommemorativeDateRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Commemorative date count: %d", count)
	})

	t.Run("Check Transactional Campaign Creation", func(t *testing.T) {
		userId := uuid.New()
		user := &entity.User{
			Id:       userId,
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
			Status:   "active",
		}
		err := uow.UserRepository().Create(context.Background(), user)
		assert.NoError(t, err)

		calendar := &entity.Calendar{
			Id:     uuid.New(),
			Name:   "Integration Calendar",
			UserId: userId,
		}
		err = uow.CalendarRepository().Create(context.Background(), calendar)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		origin := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
		campaign := &entity.Campaign{
			Id:                      uuid.New(),
			Name:                    "Integration Campaign",
			StartDate:               origin,
			EndDate:                 origin,
			OriginCommemorativeDate: &origin,
			IsFromCommemorative:     true,
			UserId:                  userId,
			CalendarId:              calendar.Id,
		}
		err = uow.CampaignRepository().Create(ctx, campaign)
		assert.NoError(t, err)

		found, err := uow.CampaignRepository().FindOne(ctx,
			specification.ByCalendarID{CalendarID: calendar.Id},
			specification.ByName{Name: "Integration Campaign"},
			specification.ByOriginDate{Date: origin},
			specification.FromCommemorative{},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created commemorative-keyed Campaign in Transaction")
	})
}
