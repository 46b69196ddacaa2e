package models

import "time"

// Class represents an administrative class group.
type Class struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Subject   string    `bson:"subject" json:"subject"`
	Teacher   string    `bson:"teacher" json:"teacher"`
	Room      string    `bson:"room,omitempty" json:"room,omitempty"`
	Capacity  int       `bson:"capacity" json:"capacity"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateClassRequest defines the payload for creating a class.
type CreateClassRequest struct {
	Name     string `json:"name" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Teacher  string `json:"teacher" binding:"required"`
	Room     string `json:"room"`
	Capacity int    `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateClassRequest defines a partial class update. Nil fields are left unchanged.
type UpdateClassRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Subject  *string `json:"subject" binding:"omitempty,min=1"`
	Teacher  *string `json:"teacher" binding:"omitempty,min=1"`
	Room     *string `json:"room"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}
