package schedule

import (
	"context"
	"errors"
	"testing"

	"classtrack/models"
)

func TestCreateExceptionDuplicateDate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")

	if _, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-07",
		StartTime:  "10:00",
		EndTime:    "11:00",
	}); err != nil {
		t.Fatalf("first exception rejected: %v", err)
	}

	_, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-07",
		Cancelled:  true,
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for duplicate date, got %v", err)
	}
}

func TestCreateExceptionScheduleNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateException(context.Background(), models.CreateExceptionRequest{
		ScheduleID: "missing",
		Date:       "2026-09-07",
		Cancelled:  true,
	})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateExceptionInvalidOverrideRange(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")

	_, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-07",
		StartTime:  "11:00",
		EndTime:    "10:00",
	})
	var invalid InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

func TestCreateExceptionCancellationSkipsRangeCheck(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")

	// A cancellation carries no override times, so none are validated.
	created, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID,
		Date:       "2026-09-07",
		Cancelled:  true,
	})
	if err != nil {
		t.Fatalf("cancellation rejected: %v", err)
	}
	if !created.Cancelled {
		t.Error("cancelled flag lost")
	}
}

func TestUpdateExceptionDateChangeConflicts(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")
	first, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID, Date: "2026-09-07", Cancelled: true,
	})
	if err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}
	second, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID, Date: "2026-09-14", Cancelled: true,
	})
	if err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}

	// Moving the second onto the first's date collides.
	_, err = svc.UpdateException(ctx, second.ID, models.UpdateExceptionRequest{
		Date: strPtr("2026-09-07"),
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// Re-submitting the exception's own date is not a collision.
	if _, err := svc.UpdateException(ctx, first.ID, models.UpdateExceptionRequest{
		Date: strPtr("2026-09-07"),
	}); err != nil {
		t.Fatalf("no-op date update rejected: %v", err)
	}
}

func TestUpdateExceptionRejectsInvertedRange(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")
	ex, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID, Date: "2026-09-07", StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}

	// Shrinking the end below the stored start inverts the override.
	_, err = svc.UpdateException(ctx, ex.ID, models.UpdateExceptionRequest{
		EndTime: strPtr("09:00"),
	})
	var invalid InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}

	// Cancelling makes the override times irrelevant, so the same payload
	// passes once the cancelled flag is set.
	if _, err := svc.UpdateException(ctx, ex.ID, models.UpdateExceptionRequest{
		EndTime:   strPtr("09:00"),
		Cancelled: boolPtr(true),
	}); err != nil {
		t.Fatalf("cancelled update should skip range validation: %v", err)
	}
}

func TestUpdateExceptionPartialFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")
	ex, err := svc.CreateException(ctx, models.CreateExceptionRequest{
		ScheduleID: sc.ID, Date: "2026-09-07", StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("fixture exception rejected: %v", err)
	}

	updated, err := svc.UpdateException(ctx, ex.ID, models.UpdateExceptionRequest{
		Cancelled: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Cancelled {
		t.Error("cancelled flag not applied")
	}
	if updated.StartTime != "10:00" || updated.Date != "2026-09-07" {
		t.Errorf("untouched fields modified: %+v", updated)
	}
}

func TestDeleteExceptionNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteException(context.Background(), "missing")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListExceptionsSortedByDate(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sc := mustCreate(svc, "class-1", 1, "09:00", "10:00")
	for _, date := range []string{"2026-09-21", "2026-09-07", "2026-09-14"} {
		if _, err := svc.CreateException(ctx, models.CreateExceptionRequest{
			ScheduleID: sc.ID, Date: date, Cancelled: true,
		}); err != nil {
			t.Fatalf("fixture exception rejected: %v", err)
		}
	}

	list, err := svc.ListExceptions(ctx, sc.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 exceptions, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Date > list[i].Date {
			t.Errorf("exceptions out of date order: %q after %q", list[i].Date, list[i-1].Date)
		}
	}
}

func TestListExceptionsScheduleNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ListExceptions(context.Background(), "missing")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
