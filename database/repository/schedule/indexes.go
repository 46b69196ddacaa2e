// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedules collection.
//
// The unique (classId, dayOfWeek, startTime, endTime) index is a storage-level
// guard for the check-then-act window between the conflict scan and the write:
// two concurrent creates of an identical range lose to the constraint even if
// both scans came back clean. Partially overlapping concurrent writes are not
// expressible as a Mongo constraint and remain subject to that window.
func (r *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on schedule ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for classId and dayOfWeek (conflict scan pattern)
		{
			Keys:    bson.D{{Key: "classId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index().SetName("class_day_idx"),
		},
		{
			Keys: bson.D{
				{Key: "classId", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "endTime", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_class_day_range"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	return nil
}
