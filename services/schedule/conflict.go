package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"classtrack/models"
)

// dayNames maps the 0 (Sunday) .. 6 (Saturday) convention to display names.
var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayName returns the display name for a 0..6 day-of-week value.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Sprintf("day %d", dayOfWeek)
	}
	return dayNames[dayOfWeek]
}

// minutesOfDay converts an "HH:MM" wall-clock string to minutes since
// midnight.
func minutesOfDay(hhmm string) (int, error) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q", hhmm)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("malformed time %q", hhmm)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("malformed time %q", hhmm)
	}
	return hours*60 + minutes, nil
}

// rangesOverlap applies the half-open interval test on minutes since
// midnight: [s1,e1) and [s2,e2) overlap iff s1 < e2 and s2 < e1. Slots that
// share only a boundary instant do not overlap, so back-to-back scheduling is
// legal; identical ranges satisfy the inequality and do conflict.
func rangesOverlap(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// validateRange converts a candidate's times to minutes and rejects ranges
// where start is not strictly before end.
func validateRange(startTime, endTime string) (start, end int, err error) {
	start, err = minutesOfDay(startTime)
	if err != nil {
		return 0, 0, InvalidRangeError{StartTime: startTime, EndTime: endTime}
	}
	end, err = minutesOfDay(endTime)
	if err != nil {
		return 0, 0, InvalidRangeError{StartTime: startTime, EndTime: endTime}
	}
	if start >= end {
		return 0, 0, InvalidRangeError{StartTime: startTime, EndTime: endTime}
	}
	return start, end, nil
}

// detectConflicts checks a candidate against all persisted schedules sharing
// its class and day, excluding excludeID when non-empty so an update never
// conflicts with the record it replaces. One conflict is produced per
// overlapping schedule.
func (s *DefaultScheduleService) detectConflicts(ctx context.Context, cand models.ScheduleCandidate, excludeID string) ([]models.ScheduleConflict, error) {
	candStart, candEnd, err := validateRange(cand.StartTime, cand.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByClassAndDay(ctx, cand.ClassID, cand.DayOfWeek, excludeID)
	if err != nil {
		return nil, DatabaseError{Op: "conflict scan", Err: err}
	}

	var conflicts []models.ScheduleConflict
	for _, other := range existing {
		if c := conflictBetween(candStart, candEnd, cand.DayOfWeek, other, "schedule"); c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts, nil
}

// batchConflicts merges the persisted-schedule scan with the batch-local scan
// for one bulk item. Items accepted earlier in the batch are already
// persisted, so the persisted scan would report them a second time; those
// entries are dropped in favour of their batch-kind counterparts.
func (s *DefaultScheduleService) batchConflicts(ctx context.Context, cand models.ScheduleCandidate, candStart, candEnd int, accepted []models.Schedule) ([]models.ScheduleConflict, error) {
	persisted, err := s.detectConflicts(ctx, cand, "")
	if err != nil {
		return nil, err
	}

	acceptedIDs := make(map[string]bool, len(accepted))
	for _, a := range accepted {
		acceptedIDs[a.ID] = true
	}

	var conflicts []models.ScheduleConflict
	for _, c := range persisted {
		if !acceptedIDs[c.ScheduleID] {
			conflicts = append(conflicts, c)
		}
	}
	return append(conflicts, conflictsWithAccepted(candStart, candEnd, cand, accepted)...), nil
}

// conflictsWithAccepted compares a candidate against items already accepted
// earlier in the same bulk request.
func conflictsWithAccepted(candStart, candEnd int, cand models.ScheduleCandidate, accepted []models.Schedule) []models.ScheduleConflict {
	var conflicts []models.ScheduleConflict
	for _, other := range accepted {
		if other.ClassID != cand.ClassID || other.DayOfWeek != cand.DayOfWeek {
			continue
		}
		if c := conflictBetween(candStart, candEnd, cand.DayOfWeek, other, "batch"); c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts
}

func conflictBetween(candStart, candEnd, dayOfWeek int, other models.Schedule, kind string) *models.ScheduleConflict {
	otherStart, err := minutesOfDay(other.StartTime)
	if err != nil {
		return nil
	}
	otherEnd, err := minutesOfDay(other.EndTime)
	if err != nil {
		return nil
	}
	if !rangesOverlap(candStart, candEnd, otherStart, otherEnd) {
		return nil
	}
	return &models.ScheduleConflict{
		Kind:       kind,
		ScheduleID: other.ID,
		Message: fmt.Sprintf("overlaps schedule on %s from %s to %s",
			DayName(dayOfWeek), other.StartTime, other.EndTime),
	}
}
