package models

import "time"

// ScheduleException overrides or cancels one calendar date of a schedule.
// At most one exception may exist per (scheduleId, date) pair.
type ScheduleException struct {
	ID         string    `bson:"id" json:"id"`
	ScheduleID string    `bson:"scheduleId" json:"scheduleId"`
	Date       string    `bson:"date" json:"date"`                           // "YYYY-MM-DD"
	StartTime  string    `bson:"startTime,omitempty" json:"startTime,omitempty"` // override, "HH:MM"
	EndTime    string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Cancelled  bool      `bson:"cancelled" json:"cancelled"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateExceptionRequest defines the payload for creating a schedule exception.
type CreateExceptionRequest struct {
	ScheduleID string `json:"scheduleId" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"startTime" binding:"omitempty,datetime=15:04"`
	EndTime    string `json:"endTime" binding:"omitempty,datetime=15:04"`
	Cancelled  bool   `json:"cancelled"`
}

// UpdateExceptionRequest defines a partial exception update.
type UpdateExceptionRequest struct {
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"startTime" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"endTime" binding:"omitempty,datetime=15:04"`
	Cancelled *bool   `json:"cancelled"`
}
