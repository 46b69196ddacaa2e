// File: database/repository/student/indexes.go
package studentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the students, grades and
// attendance collections.
func (r *mongoStudentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "classId", Value: 1}},
			Options: options.Index().SetName("class_idx"),
		},
	}); err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}

	if _, err := r.gradesColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}},
			Options: options.Index().SetName("student_idx"),
		},
	}); err != nil {
		return fmt.Errorf("failed to create grade indexes: %w", err)
	}

	if _, err := r.attendanceColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("student_date_idx"),
		},
	}); err != nil {
		return fmt.Errorf("failed to create attendance indexes: %w", err)
	}

	return nil
}
