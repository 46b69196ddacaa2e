// File: database/repository/student/studentMongoCrud.go
package studentRepo

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

func (r *mongoStudentRepo) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, student)
	return err
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *mongoStudentRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
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

func (r *mongoStudentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	// Grades and attendance marks never outlive the student.
	if _, err := r.gradesColl.DeleteMany(ctx, bson.M{"studentId": id}); err != nil {
		return err
	}
	_, err = r.attendanceColl.DeleteMany(ctx, bson.M{"studentId": id})
	return err
}

func (r *mongoStudentRepo) ListByClass(ctx context.Context, classID string, page, limit int) ([]models.Student, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"classId": classID}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, 0, fmt.Errorf("error decoding students: %w", err)
	}
	return students, total, nil
}

func (r *mongoStudentRepo) AddGrade(ctx context.Context, grade *models.Grade) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if grade.ID == "" {
		grade.ID = uuid.New().String()
	}
	grade.RecordedAt = time.Now()

	_, err := r.gradesColl.InsertOne(ctx, grade)
	return err
}

func (r *mongoStudentRepo) ListGrades(ctx context.Context, studentID string) ([]models.Grade, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}})
	cursor, err := r.gradesColl.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grades: %w", err)
	}
	defer cursor.Close(ctx)

	var grades []models.Grade
	if err := cursor.All(ctx, &grades); err != nil {
		return nil, fmt.Errorf("error decoding grades: %w", err)
	}
	return grades, nil
}

func (r *mongoStudentRepo) AddAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.RecordedAt = time.Now()

	_, err := r.attendanceColl.InsertOne(ctx, record)
	return err
}

func (r *mongoStudentRepo) ListAttendance(ctx context.Context, studentID string) ([]models.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.attendanceColl.Find(ctx, bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding attendance: %w", err)
	}
	return records, nil
}
