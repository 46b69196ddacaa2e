package models

import "time"

// Schedule is a weekly recurring meeting slot for a class.
// Times are wall-clock "HH:MM" strings whose lexicographic order matches
// chronological order; the interval [StartTime, EndTime) is half-open.
type Schedule struct {
	ID        string    `bson:"id" json:"id"`
	ClassID   string    `bson:"classId" json:"classId"`
	DayOfWeek int       `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleConflict describes one persisted or in-batch slot that collides with
// a candidate. Never persisted.
type ScheduleConflict struct {
	Kind       string `json:"kind"` // "schedule" or "batch"
	ScheduleID string `json:"scheduleId,omitempty"`
	Message    string `json:"message"`
}

// ScheduleCandidate is the slot shape the conflict detector evaluates.
type ScheduleCandidate struct {
	ClassID   string
	DayOfWeek int
	StartTime string
	EndTime   string
}

// CreateScheduleRequest defines the payload for creating a schedule.
type CreateScheduleRequest struct {
	ClassID   string `json:"classId" binding:"required"`
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime   string `json:"endTime" binding:"required,datetime=15:04"`
}

// UpdateScheduleRequest defines a partial schedule update. Nil fields retain
// the persisted value.
type UpdateScheduleRequest struct {
	DayOfWeek *int    `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	StartTime *string `json:"startTime" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"endTime" binding:"omitempty,datetime=15:04"`
}

// BulkCreateSchedulesRequest submits multiple candidates in one call.
// Items are processed strictly in order.
type BulkCreateSchedulesRequest struct {
	Items []CreateScheduleRequest `json:"items" binding:"required,min=1,dive"`
}

// SkippedScheduleItem names one rejected bulk item by its 1-based position.
type SkippedScheduleItem struct {
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

// BulkCreateResult reports the accepted subset and the skip list; callers must
// inspect both, a bulk request can partially succeed.
type BulkCreateResult struct {
	Created []Schedule            `json:"created"`
	Skipped []SkippedScheduleItem `json:"skipped"`
}

// ScheduleWithExceptions is the detail view of one schedule.
type ScheduleWithExceptions struct {
	Schedule   Schedule            `json:"schedule"`
	Exceptions []ScheduleException `json:"exceptions"`
}

// ListSchedulesQuery carries pagination and filters for per-class listing.
type ListSchedulesQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	DayOfWeek *int   `form:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	Search    string `form:"search"` // free-text match against the time range
}

// ScheduleListResponse is the paginated listing shape.
type ScheduleListResponse struct {
	Data       []Schedule `json:"data"`
	Pagination PageInfo   `json:"pagination"`
}

// DaySchedules is one named-weekday bucket of the weekly overview, sorted by
// start time ascending.
type DaySchedules struct {
	Day       string     `json:"day"`
	Schedules []Schedule `json:"schedules"`
}

// WeeklyOverview buckets all of a class's schedules into the seven weekdays,
// Sunday first.
type WeeklyOverview struct {
	ClassID string         `json:"classId"`
	Days    []DaySchedules `json:"days"`
}

// ScheduleStats summarizes a class's schedules and exceptions.
type ScheduleStats struct {
	ClassID            string         `json:"classId"`
	TotalSchedules     int            `json:"totalSchedules"`
	PerDay             map[string]int `json:"perDay"`
	TotalExceptions    int            `json:"totalExceptions"`
	UpcomingExceptions int            `json:"upcomingExceptions"`
}
