// File: database/repository/student/interface.go
package studentRepo

import (
	"context"

	"classtrack/config"
	"classtrack/database"
	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ListByClass(ctx context.Context, classID string, page, limit int) ([]models.Student, int64, error)

	AddGrade(ctx context.Context, grade *models.Grade) error
	ListGrades(ctx context.Context, studentID string) ([]models.Grade, error)
	AddAttendance(ctx context.Context, record *models.AttendanceRecord) error
	ListAttendance(ctx context.Context, studentID string) ([]models.AttendanceRecord, error)

	EnsureIndexes() error
}

type mongoStudentRepo struct {
	coll           *mongo.Collection
	gradesColl     *mongo.Collection
	attendanceColl *mongo.Collection
}

// NewMongoStudentRepo constructs a new MongoDB StudentRepository.
func NewMongoStudentRepo() StudentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoStudentRepo{
		coll:           db.Collection("students"),
		gradesColl:     db.Collection("grades"),
		attendanceColl: db.Collection("attendance"),
	}
}
