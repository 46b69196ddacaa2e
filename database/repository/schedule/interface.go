// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"classtrack/config"
	"classtrack/database"
	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.Schedule) error
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// Delete removes the schedule and all of its exceptions.
	Delete(ctx context.Context, id string) error
	// FindByClassAndDay returns all schedules sharing classID and dayOfWeek,
	// excluding excludeID when non-empty.
	FindByClassAndDay(ctx context.Context, classID string, dayOfWeek int, excludeID string) ([]models.Schedule, error)
	GetByClass(ctx context.Context, classID string) ([]models.Schedule, error)
	ListByClass(ctx context.Context, classID string, q models.ListSchedulesQuery) ([]models.Schedule, int64, error)
	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	coll           *mongo.Collection
	exceptionsColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository. It holds a
// handle on the exceptions collection for cascading deletes.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoScheduleRepo{
		coll:           db.Collection("schedules"),
		exceptionsColl: db.Collection("schedule_exceptions"),
	}
}
