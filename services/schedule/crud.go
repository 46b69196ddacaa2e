package schedule

import (
	"context"
	"errors"

	"classtrack/models"
	"classtrack/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateSchedule persists a new weekly slot after a clean conflict scan.
func (s *DefaultScheduleService) CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.Schedule, error) {
	logger := utils.GetLogger()

	exists, err := s.Classes.ExistsByID(ctx, req.ClassID)
	if err != nil {
		return nil, DatabaseError{Op: "class lookup", Err: err}
	}
	if !exists {
		return nil, NotFoundError{Resource: "class", ID: req.ClassID}
	}

	cand := models.ScheduleCandidate{
		ClassID:   req.ClassID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	conflicts, err := s.detectConflicts(ctx, cand, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ConflictError{Message: conflicts[0].Message, Conflicts: conflicts}
	}

	schedule := &models.Schedule{
		ClassID:   cand.ClassID,
		DayOfWeek: cand.DayOfWeek,
		StartTime: cand.StartTime,
		EndTime:   cand.EndTime,
	}
	if err := s.Repo.Create(ctx, schedule); err != nil {
		return nil, DatabaseError{Op: "schedule create", Err: err}
	}

	logger.Debug("schedule created",
		zap.String("scheduleID", schedule.ID),
		zap.String("classID", schedule.ClassID),
		zap.Int("dayOfWeek", schedule.DayOfWeek))

	s.invalidateAggregates(ctx, schedule.ClassID)
	return schedule, nil
}

// UpdateSchedule overlays the partial update onto the persisted record,
// re-runs conflict detection excluding the schedule itself, then persists only
// the supplied fields.
func (s *DefaultScheduleService) UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.Schedule, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "schedule", ID: id}
		}
		return nil, DatabaseError{Op: "schedule lookup", Err: err}
	}

	cand := models.ScheduleCandidate{
		ClassID:   existing.ClassID,
		DayOfWeek: existing.DayOfWeek,
		StartTime: existing.StartTime,
		EndTime:   existing.EndTime,
	}
	fields := map[string]interface{}{}
	if req.DayOfWeek != nil {
		cand.DayOfWeek = *req.DayOfWeek
		fields["dayOfWeek"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		cand.StartTime = *req.StartTime
		fields["startTime"] = *req.StartTime
	}
	if req.EndTime != nil {
		cand.EndTime = *req.EndTime
		fields["endTime"] = *req.EndTime
	}

	conflicts, err := s.detectConflicts(ctx, cand, id)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ConflictError{Message: conflicts[0].Message, Conflicts: conflicts}
	}

	if len(fields) > 0 {
		if err := s.Repo.Update(ctx, id, fields); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, NotFoundError{Resource: "schedule", ID: id}
			}
			return nil, DatabaseError{Op: "schedule update", Err: err}
		}
	}

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, DatabaseError{Op: "schedule lookup", Err: err}
	}

	s.invalidateAggregates(ctx, updated.ClassID)
	return updated, nil
}

// DeleteSchedule removes a schedule. The store cascades removal of its
// exceptions.
func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NotFoundError{Resource: "schedule", ID: id}
		}
		return DatabaseError{Op: "schedule lookup", Err: err}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NotFoundError{Resource: "schedule", ID: id}
		}
		return DatabaseError{Op: "schedule delete", Err: err}
	}

	s.invalidateAggregates(ctx, existing.ClassID)
	return nil
}

// GetSchedule returns one schedule together with its exceptions.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, id string) (*models.ScheduleWithExceptions, error) {
	schedule, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "schedule", ID: id}
		}
		return nil, DatabaseError{Op: "schedule lookup", Err: err}
	}

	exceptions, err := s.Exceptions.ListBySchedule(ctx, id)
	if err != nil {
		return nil, DatabaseError{Op: "exception list", Err: err}
	}

	return &models.ScheduleWithExceptions{
		Schedule:   *schedule,
		Exceptions: exceptions,
	}, nil
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// ListSchedules returns a class's schedules, paginated and filterable by
// day-of-week and a free-text time-range search.
func (s *DefaultScheduleService) ListSchedules(ctx context.Context, classID string, q models.ListSchedulesQuery) (*models.ScheduleListResponse, error) {
	exists, err := s.Classes.ExistsByID(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "class lookup", Err: err}
	}
	if !exists {
		return nil, NotFoundError{Resource: "class", ID: classID}
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	schedules, total, err := s.Repo.ListByClass(ctx, classID, q)
	if err != nil {
		return nil, DatabaseError{Op: "schedule list", Err: err}
	}
	if schedules == nil {
		schedules = []models.Schedule{}
	}

	return &models.ScheduleListResponse{
		Data:       schedules,
		Pagination: models.NewPageInfo(q.Page, q.Limit, total),
	}, nil
}
