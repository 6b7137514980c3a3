package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/teamtrack/internal/domain/user"
)

type UsersStore interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error)
	Delete(ctx context.Context, id string) error
}

// RoleChecker is the single authorization primitive: the caller-supplied
// userId in the body is trusted at face value and checked against the
// TECH_LEAD role. There is no session or token layer in front of it.
type RoleChecker interface {
	IsTechLead(ctx context.Context, userID string) (bool, error)
}

type UsersHandler struct {
	repo UsersStore
	auth RoleChecker
}

func NewUsersHandler(repo UsersStore, auth RoleChecker) *UsersHandler {
	return &UsersHandler{repo: repo, auth: auth}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Failed to fetch users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can create users")
		return
	}

	u, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			RespondConflict(ctx, "A user with this email already exists")
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.JSON(http.StatusCreated, u)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not update user")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can update users")
		return
	}

	u, err := h.repo.Update(ctx.Request.Context(), req)

	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			RespondNotFound(ctx, "User not found")
		case errors.Is(err, user.ErrEmailTaken):
			RespondConflict(ctx, "A user with this email already exists")
		default:
			RespondInternal(ctx, "Could not update user")
		}

		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	var req user.DeleteUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not delete user")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can delete users")
		return
	}

	err = h.repo.Delete(ctx.Request.Context(), req.ID)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		if errors.Is(err, user.ErrHasTasks) {
			RespondConflict(ctx, "User still owns tasks")
			return
		}

		RespondInternal(ctx, "Could not delete user")
		return
	}

	RespondMessage(ctx, "User deleted")
}
