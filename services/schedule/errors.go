package schedule

import (
	"errors"
	"fmt"
	"strings"

	"classtrack/models"
)

// ErrEmptyBatch rejects a bulk request carrying no items before any storage
// work happens.
var ErrEmptyBatch = errors.New("bulk request contains no items")

// NotFoundError signals that a referenced class, schedule or exception is absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ConflictError signals a time overlap or a duplicate exception date.
type ConflictError struct {
	Message   string
	Conflicts []models.ScheduleConflict
}

func (e ConflictError) Error() string {
	return e.Message
}

// NewBulkConflictError aggregates a fully-skipped bulk request into one error.
func NewBulkConflictError(skipped []models.SkippedScheduleItem) ConflictError {
	reasons := make([]string, len(skipped))
	for i, s := range skipped {
		reasons[i] = fmt.Sprintf("item %d: %s", s.Position, s.Reason)
	}
	return ConflictError{
		Message: "all submitted schedules conflict: " + strings.Join(reasons, "; "),
	}
}

// InvalidRangeError signals a candidate whose start is not strictly before its
// end. Such ranges are rejected before any overlap arithmetic runs.
type InvalidRangeError struct {
	StartTime string
	EndTime   string
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: start %q must be before end %q", e.StartTime, e.EndTime)
}

// DatabaseError wraps an unexpected storage failure, preserving the cause.
type DatabaseError struct {
	Op  string
	Err error
}

func (e DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e DatabaseError) Unwrap() error {
	return e.Err
}
