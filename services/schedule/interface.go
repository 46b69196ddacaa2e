package schedule

import (
	"context"
	"fmt"

	classRepo "classtrack/database/repository/class"
	exceptionRepo "classtrack/database/repository/exception"
	scheduleRepo "classtrack/database/repository/schedule"
	"classtrack/models"
)

// ScheduleService defines the schedule and exception management operations
// exposed to the HTTP boundary.
type ScheduleService interface {
	// Schedule management
	CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
	GetSchedule(ctx context.Context, id string) (*models.ScheduleWithExceptions, error)
	ListSchedules(ctx context.Context, classID string, q models.ListSchedulesQuery) (*models.ScheduleListResponse, error)
	CreateBulk(ctx context.Context, req models.BulkCreateSchedulesRequest) (*models.BulkCreateResult, error)

	// Exception management
	CreateException(ctx context.Context, req models.CreateExceptionRequest) (*models.ScheduleException, error)
	UpdateException(ctx context.Context, id string, req models.UpdateExceptionRequest) (*models.ScheduleException, error)
	DeleteException(ctx context.Context, id string) error
	ListExceptions(ctx context.Context, scheduleID string) ([]models.ScheduleException, error)

	// Aggregates
	WeeklyOverview(ctx context.Context, classID string) (*models.WeeklyOverview, error)
	Stats(ctx context.Context, classID string) (*models.ScheduleStats, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Classes    classRepo.ClassRepository
	Repo       scheduleRepo.ScheduleRepository
	Exceptions exceptionRepo.ExceptionRepository
	Cache      AggregateCache // nil disables aggregate caching
}

func NewDefaultScheduleService(
	classes classRepo.ClassRepository,
	repo scheduleRepo.ScheduleRepository,
	exceptions exceptionRepo.ExceptionRepository,
	cache AggregateCache,
) (*DefaultScheduleService, error) {
	if classes == nil || repo == nil || exceptions == nil {
		return nil, fmt.Errorf("schedule service initialization error: one or more dependencies are nil")
	}

	return &DefaultScheduleService{
		Classes:    classes,
		Repo:       repo,
		Exceptions: exceptions,
		Cache:      cache,
	}, nil
}
