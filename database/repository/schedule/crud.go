// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"classtrack/models"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, schedule)
	return err
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.Schedule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
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

func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	// Cascade: a schedule's exceptions never outlive it.
	_, err = r.exceptionsColl.DeleteMany(ctx, bson.M{"scheduleId": id})
	return err
}
