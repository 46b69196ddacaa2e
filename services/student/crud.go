package student

import (
	"context"
	"errors"
	"fmt"

	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that the requested student does not exist.
var ErrNotFound = errors.New("student not found")

// ErrClassNotFound signals that the referenced class does not exist.
var ErrClassNotFound = errors.New("class not found")

func (s *DefaultStudentService) CreateStudent(ctx context.Context, req models.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.Classes.ExistsByID(ctx, req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to check class: %w", err)
	}
	if !exists {
		return nil, ErrClassNotFound
	}

	student := &models.Student{
		ClassID:   req.ClassID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.Repo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *DefaultStudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

func (s *DefaultStudentService) UpdateStudent(ctx context.Context, id string, req models.UpdateStudentRequest) (*models.Student, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["lastName"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

func (s *DefaultStudentService) ListStudents(ctx context.Context, classID string, page, limit int) (*models.StudentListResponse, error) {
	exists, err := s.Classes.ExistsByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to check class: %w", err)
	}
	if !exists {
		return nil, ErrClassNotFound
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	students, total, err := s.Repo.ListByClass(ctx, classID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return &models.StudentListResponse{
		Data:       students,
		Pagination: models.NewPageInfo(page, limit, total),
	}, nil
}

func (s *DefaultStudentService) AddGrade(ctx context.Context, studentID string, req models.AddGradeRequest) (*models.Grade, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		StudentID: studentID,
		Subject:   req.Subject,
		Score:     req.Score,
		Term:      req.Term,
	}
	if err := s.Repo.AddGrade(ctx, grade); err != nil {
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}
	return grade, nil
}

func (s *DefaultStudentService) ListGrades(ctx context.Context, studentID string) ([]models.Grade, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	grades, err := s.Repo.ListGrades(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	if grades == nil {
		grades = []models.Grade{}
	}
	return grades, nil
}

func (s *DefaultStudentService) MarkAttendance(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	record := &models.AttendanceRecord{
		StudentID: studentID,
		Date:      req.Date,
		Status:    req.Status,
	}
	if err := s.Repo.AddAttendance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	return record, nil
}

func (s *DefaultStudentService) ListAttendance(ctx context.Context, studentID string) ([]models.AttendanceRecord, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	records, err := s.Repo.ListAttendance(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return records, nil
}
