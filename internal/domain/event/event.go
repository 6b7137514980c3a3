package event

import (
	"errors"
	"time"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("event not found")

// Timestamps come in as strings and are parsed leniently; start/end ordering
// is deliberately not enforced here.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	UserID      string `json:"userId"`
}

type UpdateEventRequest struct {
	ID          string  `json:"id" binding:"required"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	UserID      string  `json:"userId"`
}

type DeleteEventRequest struct {
	ID     string `json:"id" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}
