// File: database/repository/exception/crud.go
package exceptionRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classtrack/models"
)

func (r *mongoExceptionRepo) Create(ctx context.Context, exception *models.ScheduleException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if exception.ID == "" {
		exception.ID = uuid.New().String()
	}
	now := time.Now()
	exception.CreatedAt = now
	exception.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, exception)
	return err
}

func (r *mongoExceptionRepo) GetByID(ctx context.Context, id string) (*models.ScheduleException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exception models.ScheduleException
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exception); err != nil {
		return nil, err
	}
	return &exception, nil
}

func (r *mongoExceptionRepo) FindByScheduleAndDate(ctx context.Context, scheduleID, date, excludeID string) (*models.ScheduleException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"scheduleId": scheduleID, "date": date}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	var exception models.ScheduleException
	if err := r.coll.FindOne(ctx, filter).Decode(&exception); err != nil {
		return nil, err
	}
	return &exception, nil
}

func (r *mongoExceptionRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExceptionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoExceptionRepo) ListBySchedule(ctx context.Context, scheduleID string) ([]models.ScheduleException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"scheduleId": scheduleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exceptions: %w", err)
	}
	defer cursor.Close(ctx)

	var exceptions []models.ScheduleException
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("error decoding exceptions: %w", err)
	}
	return exceptions, nil
}

func (r *mongoExceptionRepo) ListByScheduleIDs(ctx context.Context, scheduleIDs []string) ([]models.ScheduleException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(scheduleIDs) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"scheduleId": bson.M{"$in": scheduleIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exceptions: %w", err)
	}
	defer cursor.Close(ctx)

	var exceptions []models.ScheduleException
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("error decoding exceptions: %w", err)
	}
	return exceptions, nil
}
