package schedule

import (
	"context"
	"errors"
	"strings"
	"testing"

	"classtrack/models"
)

func bulkItem(classID string, day int, start, end string) models.CreateScheduleRequest {
	return models.CreateScheduleRequest{
		ClassID:   classID,
		DayOfWeek: intPtr(day),
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateBulkPartialSuccess(t *testing.T) {
	svc, _, _ := newTestService()

	// B overlaps A; C is clean. Order decides: A wins, B is skipped.
	result, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 1, "09:00", "10:00"),
			bulkItem("class-1", 1, "09:30", "10:30"),
			bulkItem("class-1", 2, "09:00", "10:00"),
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}
	if len(result.Created) != 2 {
		t.Fatalf("expected 2 created, got %d", len(result.Created))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("expected 1 skipped, got %d", len(result.Skipped))
	}
	if result.Skipped[0].Position != 2 {
		t.Errorf("skip position = %d, want 2", result.Skipped[0].Position)
	}
	if !strings.Contains(result.Skipped[0].Reason, "Monday") {
		t.Errorf("skip reason should name the day: %q", result.Skipped[0].Reason)
	}
}

func TestCreateBulkOrderIsTieBreak(t *testing.T) {
	svc, _, _ := newTestService()

	// Both items overlap each other and nothing else. The earlier one is
	// accepted, the later one skipped.
	result, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 4, "13:00", "14:00"),
			bulkItem("class-1", 4, "13:30", "14:30"),
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}
	if len(result.Created) != 1 || result.Created[0].StartTime != "13:00" {
		t.Fatalf("first item should win: %+v", result.Created)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Position != 2 {
		t.Fatalf("second item should be skipped: %+v", result.Skipped)
	}
}

func TestCreateBulkAllSkipped(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")

	_, err := svc.CreateBulk(ctx, models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 1, "09:15", "09:45"),
			bulkItem("class-1", 1, "09:30", "10:30"),
		},
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected aggregated ConflictError, got %v", err)
	}
	if !strings.Contains(conflict.Message, "item 1:") || !strings.Contains(conflict.Message, "item 2:") {
		t.Errorf("aggregated message should cite each skipped position: %q", conflict.Message)
	}
}

func TestCreateBulkSkipsInvalidRange(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 1, "10:00", "09:00"),
			bulkItem("class-1", 1, "11:00", "12:00"),
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}
	if len(result.Created) != 1 {
		t.Fatalf("valid item should survive an invalid sibling: %+v", result)
	}
	if result.Skipped[0].Position != 1 {
		t.Errorf("invalid item should be skipped at position 1: %+v", result.Skipped)
	}
}

func TestCreateBulkEmptyItems(t *testing.T) {
	svc, _, _ := newTestService()

	// The HTTP binding rejects empty batches, but the service must hold the
	// contract on its own.
	_, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}

	_, err = svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{Items: nil})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch for nil items, got %v", err)
	}
}

func TestBatchConflictReportedOnce(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.CreateBulk(ctx, models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 1, "09:00", "10:00"),
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}

	// An item accepted earlier in the batch is already persisted; a later
	// overlapping candidate must see it as a single batch-kind conflict, not
	// once per scan.
	cand := models.ScheduleCandidate{
		ClassID: "class-1", DayOfWeek: 1, StartTime: "09:30", EndTime: "10:30",
	}
	candStart, candEnd, err := validateRange(cand.StartTime, cand.EndTime)
	if err != nil {
		t.Fatalf("fixture range invalid: %v", err)
	}

	conflicts, err := svc.batchConflicts(ctx, cand, candStart, candEnd, result.Created)
	if err != nil {
		t.Fatalf("conflict scan failed: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	if conflicts[0].Kind != "batch" {
		t.Errorf("conflict kind = %q, want batch", conflicts[0].Kind)
	}
}

func TestCreateBulkUnknownClassAborts(t *testing.T) {
	svc, schedules, _ := newTestService()

	_, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("missing", 1, "09:00", "10:00"),
		},
	})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(schedules.schedules) != 0 {
		t.Errorf("nothing should be persisted when the class is unknown")
	}
}

func TestCreateBulkAcrossClasses(t *testing.T) {
	svc, _, _ := newTestService("class-1", "class-2")

	// Same day and times in different classes never conflict.
	result, err := svc.CreateBulk(context.Background(), models.BulkCreateSchedulesRequest{
		Items: []models.CreateScheduleRequest{
			bulkItem("class-1", 1, "09:00", "10:00"),
			bulkItem("class-2", 1, "09:00", "10:00"),
		},
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}
	if len(result.Created) != 2 || len(result.Skipped) != 0 {
		t.Fatalf("cross-class items should both be accepted: %+v", result)
	}
}
