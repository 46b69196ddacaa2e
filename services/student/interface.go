package student

import (
	"context"
	"fmt"

	classRepo "classtrack/database/repository/class"
	studentRepo "classtrack/database/repository/student"
	"classtrack/models"
)

// StudentService defines student, grade and attendance operations.
type StudentService interface {
	CreateStudent(ctx context.Context, req models.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, req models.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
	ListStudents(ctx context.Context, classID string, page, limit int) (*models.StudentListResponse, error)

	AddGrade(ctx context.Context, studentID string, req models.AddGradeRequest) (*models.Grade, error)
	ListGrades(ctx context.Context, studentID string) ([]models.Grade, error)
	MarkAttendance(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (*models.AttendanceRecord, error)
	ListAttendance(ctx context.Context, studentID string) ([]models.AttendanceRecord, error)
}

// DefaultStudentService is the production implementation.
type DefaultStudentService struct {
	Repo    studentRepo.StudentRepository
	Classes classRepo.ClassRepository
}

func NewDefaultStudentService(repo studentRepo.StudentRepository, classes classRepo.ClassRepository) (*DefaultStudentService, error) {
	if repo == nil || classes == nil {
		return nil, fmt.Errorf("student service initialization error: one or more dependencies are nil")
	}
	return &DefaultStudentService{Repo: repo, Classes: classes}, nil
}
