// File: database/repository/exception/interface.go
package exceptionRepo

import (
	"context"

	"classtrack/config"
	"classtrack/database"
	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ExceptionRepository interface {
	Create(ctx context.Context, exception *models.ScheduleException) error
	GetByID(ctx context.Context, id string) (*models.ScheduleException, error)
	// FindByScheduleAndDate returns the exception occupying (scheduleID, date),
	// excluding excludeID when non-empty, or mongo.ErrNoDocuments.
	FindByScheduleAndDate(ctx context.Context, scheduleID, date, excludeID string) (*models.ScheduleException, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// ListBySchedule returns a schedule's exceptions ordered by date ascending.
	ListBySchedule(ctx context.Context, scheduleID string) ([]models.ScheduleException, error)
	ListByScheduleIDs(ctx context.Context, scheduleIDs []string) ([]models.ScheduleException, error)
	EnsureIndexes() error
}

type mongoExceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoExceptionRepo constructs a new MongoDB ExceptionRepository.
func NewMongoExceptionRepo() ExceptionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoExceptionRepo{
		coll: db.Collection("schedule_exceptions"),
	}
}
