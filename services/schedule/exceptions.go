package schedule

import (
	"context"
	"errors"
	"fmt"

	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateException records a one-off override or cancellation for a specific
// date of a schedule. At most one exception may exist per (schedule, date);
// the creation timestamp is stamped now, independent of the exception's date.
func (s *DefaultScheduleService) CreateException(ctx context.Context, req models.CreateExceptionRequest) (*models.ScheduleException, error) {
	parent, err := s.Repo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "schedule", ID: req.ScheduleID}
		}
		return nil, DatabaseError{Op: "schedule lookup", Err: err}
	}

	if !req.Cancelled && req.StartTime != "" && req.EndTime != "" {
		if _, _, err := validateRange(req.StartTime, req.EndTime); err != nil {
			return nil, err
		}
	}

	existing, err := s.Exceptions.FindByScheduleAndDate(ctx, req.ScheduleID, req.Date, "")
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, DatabaseError{Op: "exception lookup", Err: err}
	}
	if existing != nil {
		return nil, ConflictError{
			Message: fmt.Sprintf("an exception already exists for %s on %s", req.ScheduleID, req.Date),
		}
	}

	exception := &models.ScheduleException{
		ScheduleID: req.ScheduleID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Cancelled:  req.Cancelled,
	}
	if err := s.Exceptions.Create(ctx, exception); err != nil {
		return nil, DatabaseError{Op: "exception create", Err: err}
	}

	s.invalidateAggregates(ctx, parent.ClassID)
	return exception, nil
}

// UpdateException applies a partial update. The per-date uniqueness check
// reruns only when the date field changes, excluding the exception itself.
func (s *DefaultScheduleService) UpdateException(ctx context.Context, id string, req models.UpdateExceptionRequest) (*models.ScheduleException, error) {
	existing, err := s.Exceptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "exception", ID: id}
		}
		return nil, DatabaseError{Op: "exception lookup", Err: err}
	}

	fields := map[string]interface{}{}
	if req.Date != nil && *req.Date != existing.Date {
		other, err := s.Exceptions.FindByScheduleAndDate(ctx, existing.ScheduleID, *req.Date, id)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, DatabaseError{Op: "exception lookup", Err: err}
		}
		if other != nil {
			return nil, ConflictError{
				Message: fmt.Sprintf("an exception already exists for %s on %s", existing.ScheduleID, *req.Date),
			}
		}
		fields["date"] = *req.Date
	}
	if req.StartTime != nil {
		fields["startTime"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["endTime"] = *req.EndTime
	}
	if req.Cancelled != nil {
		fields["cancelled"] = *req.Cancelled
	}

	// The stored override must satisfy the same range policy as creation.
	effStart, effEnd, effCancelled := existing.StartTime, existing.EndTime, existing.Cancelled
	if req.StartTime != nil {
		effStart = *req.StartTime
	}
	if req.EndTime != nil {
		effEnd = *req.EndTime
	}
	if req.Cancelled != nil {
		effCancelled = *req.Cancelled
	}
	if !effCancelled && effStart != "" && effEnd != "" {
		if _, _, err := validateRange(effStart, effEnd); err != nil {
			return nil, err
		}
	}

	if len(fields) > 0 {
		if err := s.Exceptions.Update(ctx, id, fields); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, NotFoundError{Resource: "exception", ID: id}
			}
			return nil, DatabaseError{Op: "exception update", Err: err}
		}
	}

	updated, err := s.Exceptions.GetByID(ctx, id)
	if err != nil {
		return nil, DatabaseError{Op: "exception lookup", Err: err}
	}

	if parent, err := s.Repo.GetByID(ctx, updated.ScheduleID); err == nil {
		s.invalidateAggregates(ctx, parent.ClassID)
	}
	return updated, nil
}

// DeleteException removes one exception, independent of its parent schedule.
func (s *DefaultScheduleService) DeleteException(ctx context.Context, id string) error {
	existing, err := s.Exceptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NotFoundError{Resource: "exception", ID: id}
		}
		return DatabaseError{Op: "exception lookup", Err: err}
	}

	if err := s.Exceptions.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NotFoundError{Resource: "exception", ID: id}
		}
		return DatabaseError{Op: "exception delete", Err: err}
	}

	if parent, err := s.Repo.GetByID(ctx, existing.ScheduleID); err == nil {
		s.invalidateAggregates(ctx, parent.ClassID)
	}
	return nil
}

// ListExceptions returns a schedule's exceptions ordered by date ascending.
func (s *DefaultScheduleService) ListExceptions(ctx context.Context, scheduleID string) ([]models.ScheduleException, error) {
	if _, err := s.Repo.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NotFoundError{Resource: "schedule", ID: scheduleID}
		}
		return nil, DatabaseError{Op: "schedule lookup", Err: err}
	}

	exceptions, err := s.Exceptions.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, DatabaseError{Op: "exception list", Err: err}
	}
	if exceptions == nil {
		exceptions = []models.ScheduleException{}
	}
	return exceptions, nil
}
