package class

import (
	"context"
	"errors"
	"fmt"

	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals that the requested class does not exist.
var ErrNotFound = errors.New("class not found")

func (s *DefaultClassService) CreateClass(ctx context.Context, req models.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		Name:     req.Name,
		Subject:  req.Subject,
		Teacher:  req.Teacher,
		Room:     req.Room,
		Capacity: req.Capacity,
	}
	if err := s.Repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return class, nil
}

func (s *DefaultClassService) GetClass(ctx context.Context, id string) (*models.Class, error) {
	class, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return class, nil
}

func (s *DefaultClassService) UpdateClass(ctx context.Context, id string, req models.UpdateClassRequest) (*models.Class, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Teacher != nil {
		fields["teacher"] = *req.Teacher
	}
	if req.Room != nil {
		fields["room"] = *req.Room
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update class: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// TODO: cascade deletion into the class's schedules and students.
func (s *DefaultClassService) DeleteClass(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}

func (s *DefaultClassService) ListClasses(ctx context.Context, page, limit int) (*models.ClassListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	classes, total, err := s.Repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	if classes == nil {
		classes = []models.Class{}
	}
	return &models.ClassListResponse{
		Data:       classes,
		Pagination: models.NewPageInfo(page, limit, total),
	}, nil
}
