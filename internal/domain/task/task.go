package task

import (
	"errors"
	"time"

	"github.com/teamtrack/teamtrack/internal/domain/user"
)

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	UserID      string     `json:"userId"`
	// owning user, populated by list queries that join the users table
	User      *user.User `json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

var (
	ErrNotFound     = errors.New("task not found")
	ErrOwnerMissing = errors.New("task owner does not exist")
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required,max=2000"`
	Status      Status `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE"`
	// doubles as the owner of the task and the acting user for the role gate
	UserID string `json:"userId" binding:"required"`
}

type UpdateTaskRequest struct {
	ID          string  `json:"id" binding:"required"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      *Status `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *string `json:"dueDate"`
	UserID      string  `json:"userId"`
}

// StatusOnly reports whether status is the only task field the update touches.
// The handler uses it for the carve-out that lets non-leads mark a task DONE.
func (r UpdateTaskRequest) StatusOnly() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil
}

type DeleteTaskRequest struct {
	ID     string `json:"id" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}
