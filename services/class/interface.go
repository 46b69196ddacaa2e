package class

import (
	"context"
	"fmt"

	classRepo "classtrack/database/repository/class"
	"classtrack/models"
)

// ClassService defines class management operations.
type ClassService interface {
	CreateClass(ctx context.Context, req models.CreateClassRequest) (*models.Class, error)
	GetClass(ctx context.Context, id string) (*models.Class, error)
	UpdateClass(ctx context.Context, id string, req models.UpdateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, id string) error
	ListClasses(ctx context.Context, page, limit int) (*models.ClassListResponse, error)
}

// DefaultClassService is the production implementation.
type DefaultClassService struct {
	Repo classRepo.ClassRepository
}

func NewDefaultClassService(repo classRepo.ClassRepository) (*DefaultClassService, error) {
	if repo == nil {
		return nil, fmt.Errorf("class service initialization error: repository is nil")
	}
	return &DefaultClassService{Repo: repo}, nil
}
