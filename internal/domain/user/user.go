package user

import (
	"errors"
	"time"
)

// Role is a closed set; anything outside it is rejected at the binding layer.
type Role string

const (
	RoleDev      Role = "DEV"
	RoleTechLead Role = "TECH_LEAD"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDev, RoleTechLead:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already in use")
	ErrHasTasks   = errors.New("user still owns tasks")
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=120"`
	Email string `json:"email" binding:"required,email"`
	Role  Role   `json:"role" binding:"omitempty,oneof=DEV TECH_LEAD"`
	// acting user, checked against the TECH_LEAD role
	UserID string `json:"userId"`
}

// pointer fields so absent keys leave the stored value untouched
type UpdateUserRequest struct {
	ID     string  `json:"id" binding:"required"`
	Name   *string `json:"name" binding:"omitempty,min=1,max=120"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Role   *Role   `json:"role" binding:"omitempty,oneof=DEV TECH_LEAD"`
	UserID string  `json:"userId"`
}

type DeleteUserRequest struct {
	ID     string `json:"id" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}
