package schedule

import (
	"context"
	"sort"
	"time"

	"classtrack/models"
)

// WeeklyOverview buckets all of a class's schedules into the seven named
// weekdays, Sunday first. Entries within a day are sorted by start time;
// lexicographic order on "HH:MM" equals chronological order.
func (s *DefaultScheduleService) WeeklyOverview(ctx context.Context, classID string) (*models.WeeklyOverview, error) {
	exists, err := s.Classes.ExistsByID(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "class lookup", Err: err}
	}
	if !exists {
		return nil, NotFoundError{Resource: "class", ID: classID}
	}

	if s.Cache != nil {
		if cached, err := s.Cache.GetOverview(ctx, classID); err == nil && cached != nil {
			return cached, nil
		}
	}

	schedules, err := s.Repo.GetByClass(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "schedule list", Err: err}
	}

	overview := &models.WeeklyOverview{
		ClassID: classID,
		Days:    make([]models.DaySchedules, 7),
	}
	for day := 0; day < 7; day++ {
		overview.Days[day] = models.DaySchedules{
			Day:       DayName(day),
			Schedules: []models.Schedule{},
		}
	}
	for _, sc := range schedules {
		if sc.DayOfWeek < 0 || sc.DayOfWeek > 6 {
			continue
		}
		day := &overview.Days[sc.DayOfWeek]
		day.Schedules = append(day.Schedules, sc)
	}
	for day := range overview.Days {
		bucket := overview.Days[day].Schedules
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].StartTime < bucket[j].StartTime
		})
	}

	if s.Cache != nil {
		_ = s.Cache.SetOverview(ctx, classID, overview)
	}
	return overview, nil
}

// Stats summarizes a class's schedules and exceptions. "Upcoming" exceptions
// are those dated today or later, compared lexicographically on "YYYY-MM-DD".
func (s *DefaultScheduleService) Stats(ctx context.Context, classID string) (*models.ScheduleStats, error) {
	exists, err := s.Classes.ExistsByID(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "class lookup", Err: err}
	}
	if !exists {
		return nil, NotFoundError{Resource: "class", ID: classID}
	}

	if s.Cache != nil {
		if cached, err := s.Cache.GetStats(ctx, classID); err == nil && cached != nil {
			return cached, nil
		}
	}

	schedules, err := s.Repo.GetByClass(ctx, classID)
	if err != nil {
		return nil, DatabaseError{Op: "schedule list", Err: err}
	}

	stats := &models.ScheduleStats{
		ClassID:        classID,
		TotalSchedules: len(schedules),
		PerDay:         make(map[string]int, 7),
	}
	for day := 0; day < 7; day++ {
		stats.PerDay[DayName(day)] = 0
	}

	scheduleIDs := make([]string, 0, len(schedules))
	for _, sc := range schedules {
		scheduleIDs = append(scheduleIDs, sc.ID)
		if sc.DayOfWeek >= 0 && sc.DayOfWeek <= 6 {
			stats.PerDay[DayName(sc.DayOfWeek)]++
		}
	}

	exceptions, err := s.Exceptions.ListByScheduleIDs(ctx, scheduleIDs)
	if err != nil {
		return nil, DatabaseError{Op: "exception list", Err: err}
	}

	today := time.Now().Format("2006-01-02")
	stats.TotalExceptions = len(exceptions)
	for _, ex := range exceptions {
		if ex.Date >= today {
			stats.UpcomingExceptions++
		}
	}

	if s.Cache != nil {
		_ = s.Cache.SetStats(ctx, classID, stats)
	}
	return stats, nil
}
