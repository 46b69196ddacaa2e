package models

import "time"

// Student belongs to exactly one class.
type Student struct {
	ID        string    `bson:"id" json:"id"`
	ClassID   string    `bson:"classId" json:"classId"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Grade is a single recorded grade entry for a student.
type Grade struct {
	ID         string    `bson:"id" json:"id"`
	StudentID  string    `bson:"studentId" json:"studentId"`
	Subject    string    `bson:"subject" json:"subject"`
	Score      float64   `bson:"score" json:"score"`
	Term       string    `bson:"term" json:"term"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
}

// AttendanceRecord marks a student's presence on one calendar date.
type AttendanceRecord struct {
	ID         string    `bson:"id" json:"id"`
	StudentID  string    `bson:"studentId" json:"studentId"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Status     string    `bson:"status" json:"status"`
	RecordedAt time.Time `bson:"recordedAt" json:"recordedAt"`
}

// CreateStudentRequest defines the payload for enrolling a student.
type CreateStudentRequest struct {
	ClassID   string `json:"classId" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdateStudentRequest defines a partial student update.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// AddGradeRequest records a grade for a student.
type AddGradeRequest struct {
	Subject string  `json:"subject" binding:"required"`
	Score   float64 `json:"score" binding:"min=0,max=100"`
	Term    string  `json:"term" binding:"required"`
}

// MarkAttendanceRequest records attendance for a student on one date.
type MarkAttendanceRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Status string `json:"status" binding:"required,oneof=present absent late excused"`
}
