// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classtrack/models"
)

func (r *mongoScheduleRepo) FindByClassAndDay(ctx context.Context, classID string, dayOfWeek int, excludeID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"classId": classID, "dayOfWeek": dayOfWeek}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) GetByClass(ctx context.Context, classID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"classId": classID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) ListByClass(ctx context.Context, classID string, q models.ListSchedulesQuery) ([]models.Schedule, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := listFilter(classID, q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count schedules: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, 0, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, total, nil
}

// listFilter builds the Mongo filter for per-class listing. Free-text search
// terms are escaped so they match the stored time strings literally.
func listFilter(classID string, q models.ListSchedulesQuery) bson.M {
	filter := bson.M{"classId": classID}
	if q.DayOfWeek != nil {
		filter["dayOfWeek"] = *q.DayOfWeek
	}
	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: ""}
		filter["$or"] = bson.A{
			bson.M{"startTime": pattern},
			bson.M{"endTime": pattern},
		}
	}
	return filter
}
