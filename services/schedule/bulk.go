package schedule

import (
	"context"

	"classtrack/models"
	"classtrack/utils"

	"go.uber.org/zap"
)

// CreateBulk processes candidates strictly in input order. Each item is
// checked against persisted schedules and against the items already accepted
// earlier in this same call; a later item never invalidates an earlier one.
// Accepted items are persisted one by one, so a request can partially succeed
// and the whole batch is deliberately not wrapped in a transaction. Items must
// not be processed concurrently: ordering is the tie-break between mutually
// conflicting candidates.
func (s *DefaultScheduleService) CreateBulk(ctx context.Context, req models.BulkCreateSchedulesRequest) (*models.BulkCreateResult, error) {
	logger := utils.GetLogger()

	// The HTTP binding enforces min=1, but the service contract must hold
	// for any caller.
	if len(req.Items) == 0 {
		return nil, ErrEmptyBatch
	}

	classID := req.Items[0].ClassID
	exists, err := s.Classes.ExistsByID(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "class lookup", Err: err}
	}
	if !exists {
		return nil, NotFoundError{Resource: "class", ID: classID}
	}

	created := []models.Schedule{}
	skipped := []models.SkippedScheduleItem{}

	for i, item := range req.Items {
		position := i + 1

		if item.ClassID != classID {
			exists, err := s.Classes.ExistsByID(ctx, item.ClassID)
			if err != nil {
				return nil, DatabaseError{Op: "class lookup", Err: err}
			}
			if !exists {
				return nil, NotFoundError{Resource: "class", ID: item.ClassID}
			}
		}

		cand := models.ScheduleCandidate{
			ClassID:   item.ClassID,
			DayOfWeek: *item.DayOfWeek,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		}

		candStart, candEnd, err := validateRange(cand.StartTime, cand.EndTime)
		if err != nil {
			skipped = append(skipped, models.SkippedScheduleItem{
				Position: position,
				Reason:   err.Error(),
			})
			continue
		}

		conflicts, err := s.batchConflicts(ctx, cand, candStart, candEnd, created)
		if err != nil {
			return nil, err
		}

		if len(conflicts) > 0 {
			skipped = append(skipped, models.SkippedScheduleItem{
				Position: position,
				Reason:   conflicts[0].Message,
			})
			continue
		}

		schedule := models.Schedule{
			ClassID:   cand.ClassID,
			DayOfWeek: cand.DayOfWeek,
			StartTime: cand.StartTime,
			EndTime:   cand.EndTime,
		}
		if err := s.Repo.Create(ctx, &schedule); err != nil {
			return nil, DatabaseError{Op: "schedule create", Err: err}
		}
		created = append(created, schedule)
	}

	if len(created) == 0 {
		return nil, NewBulkConflictError(skipped)
	}

	logger.Debug("bulk schedule creation finished",
		zap.Int("submitted", len(req.Items)),
		zap.Int("created", len(created)),
		zap.Int("skipped", len(skipped)))

	invalidated := map[string]bool{}
	for _, sc := range created {
		if !invalidated[sc.ClassID] {
			s.invalidateAggregates(ctx, sc.ClassID)
			invalidated[sc.ClassID] = true
		}
	}

	return &models.BulkCreateResult{Created: created, Skipped: skipped}, nil
}
