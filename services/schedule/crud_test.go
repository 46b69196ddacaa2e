package schedule

import (
	"context"
	"errors"
	"testing"

	"classtrack/models"
)

func TestCreateScheduleConflict(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")

	_, err := svc.CreateSchedule(ctx, models.CreateScheduleRequest{
		ClassID:   "class-1",
		DayOfWeek: intPtr(1),
		StartTime: "09:30",
		EndTime:   "10:30",
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflict.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflict.Conflicts))
	}
	if conflict.Conflicts[0].Message != "overlaps schedule on Monday from 09:00 to 10:00" {
		t.Errorf("unexpected conflict message: %q", conflict.Conflicts[0].Message)
	}
}

func TestCreateScheduleBackToBack(t *testing.T) {
	svc, _, _ := newTestService()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")

	// Sharing a boundary instant is not an overlap.
	created, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		ClassID:   "class-1",
		DayOfWeek: intPtr(1),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	if err != nil {
		t.Fatalf("back-to-back schedule rejected: %v", err)
	}
	if created.ID == "" {
		t.Error("created schedule has no ID")
	}
}

func TestCreateScheduleOtherDayNoConflict(t *testing.T) {
	svc, _, _ := newTestService()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")

	if _, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		ClassID:   "class-1",
		DayOfWeek: intPtr(2),
		StartTime: "09:00",
		EndTime:   "10:00",
	}); err != nil {
		t.Fatalf("same times on a different day rejected: %v", err)
	}
}

func TestCreateScheduleClassNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		ClassID:   "missing",
		DayOfWeek: intPtr(1),
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Resource != "class" {
		t.Errorf("expected class resource, got %q", notFound.Resource)
	}
}

func TestCreateScheduleInvalidRange(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSchedule(context.Background(), models.CreateScheduleRequest{
		ClassID:   "class-1",
		DayOfWeek: intPtr(1),
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	var invalid InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

func TestUpdateScheduleExcludesSelf(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")

	// Extending the end time overlaps the record's own stored range. The
	// record under update must not conflict with itself.
	updated, err := svc.UpdateSchedule(ctx, sc.ID, models.UpdateScheduleRequest{
		EndTime: strPtr("10:30"),
	})
	if err != nil {
		t.Fatalf("self-overlapping update rejected: %v", err)
	}
	if updated.EndTime != "10:30" {
		t.Errorf("end time not updated: %q", updated.EndTime)
	}
	if updated.StartTime != "09:00" {
		t.Errorf("unchanged field modified: %q", updated.StartTime)
	}
}

func TestUpdateScheduleConflictsWithOther(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")
	second := mustCreate(svc, "class-1", 1, "11:00", "12:00")

	_, err := svc.UpdateSchedule(ctx, second.ID, models.UpdateScheduleRequest{
		StartTime: strPtr("09:30"),
		EndTime:   strPtr("10:30"),
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestUpdateScheduleNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateSchedule(context.Background(), "missing", models.UpdateScheduleRequest{
		StartTime: strPtr("09:00"),
	})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteScheduleCascadesExceptions(t *testing.T) {
	svc, _, exceptions := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")
	if _, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-07",
		Cancelled:  true,
	}); err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}

	if err := svc.DeleteSchedule(ctx, sc.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(exceptions.exceptions) != 0 {
		t.Errorf("exceptions survived schedule deletion: %d left", len(exceptions.exceptions))
	}
}

func TestGetScheduleWithExceptions(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 3, "14:00", "15:00")
	if _, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-09",
		StartTime:  "15:00",
		EndTime:    "16:00",
	}); err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}

	detail, err := svc.GetSchedule(ctx, sc.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Schedule.ID != sc.ID {
		t.Errorf("wrong schedule returned: %q", detail.Schedule.ID)
	}
	if len(detail.Exceptions) != 1 {
		t.Errorf("expected 1 exception, got %d", len(detail.Exceptions))
	}
}

func TestGetScheduleNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetSchedule(context.Background(), "missing")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListSchedulesPagination(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// 12 slots across Monday and Tuesday.
	starts := []string{"08:00", "09:00", "10:00", "11:00", "12:00", "13:00"}
	ends := []string{"08:30", "09:30", "10:30", "11:30", "12:30", "13:30"}
	for day := 1; day <= 2; day++ {
		for i := range starts {
			mustCreate(svc, "class-1", day, starts[i], ends[i])
		}
	}

	resp, err := svc.ListSchedules(ctx, "class-1", models.ListSchedulesQuery{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Data) != 5 {
		t.Errorf("expected 5 items on page 2, got %d", len(resp.Data))
	}
	p := resp.Pagination
	if p.Total != 12 || p.TotalPages != 3 {
		t.Errorf("pagination totals wrong: %+v", p)
	}
	if !p.HasNextPage || !p.HasPreviousPage {
		t.Errorf("page 2 of 3 should have both neighbours: %+v", p)
	}
}

func TestListSchedulesClampsPageAndLimit(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")

	resp, err := svc.ListSchedules(ctx, "class-1", models.ListSchedulesQuery{Page: 0, Limit: 500})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Pagination.Page != 1 {
		t.Errorf("page not defaulted to 1: %d", resp.Pagination.Page)
	}
	if resp.Pagination.Limit != maxPageLimit {
		t.Errorf("limit not clamped to %d: %d", maxPageLimit, resp.Pagination.Limit)
	}

	resp, err = svc.ListSchedules(ctx, "class-1", models.ListSchedulesQuery{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Pagination.Limit != defaultPageLimit {
		t.Errorf("limit not defaulted to %d: %d", defaultPageLimit, resp.Pagination.Limit)
	}
}

func TestListSchedulesDayFilter(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	mustCreate(svc, "class-1", 1, "09:00", "10:00")
	mustCreate(svc, "class-1", 2, "09:00", "10:00")

	resp, err := svc.ListSchedules(ctx, "class-1", models.ListSchedulesQuery{DayOfWeek: intPtr(2)})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].DayOfWeek != 2 {
		t.Errorf("day filter not applied: %+v", resp.Data)
	}
}

func TestListSchedulesClassNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListSchedules(context.Background(), "missing", models.ListSchedulesQuery{})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
