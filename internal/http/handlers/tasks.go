package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/teamtrack/internal/domain/task"
)

type TasksStore interface {
	Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error)
	List(ctx context.Context) ([]task.Task, error)
	Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error)
	Delete(ctx context.Context, id string) error
}

type TasksHandler struct {
	repo TasksStore
	auth RoleChecker
}

func NewTasksHandler(repo TasksStore, auth RoleChecker) *TasksHandler {
	return &TasksHandler{repo: repo, auth: auth}
}

func (h *TasksHandler) ListTasks(ctx *gin.Context) {
	tasks, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Failed to fetch tasks")
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	var req task.CreateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// the owner named in the body is also the acting user for the gate
	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not create task")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can create tasks")
		return
	}

	t, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, task.ErrOwnerMissing) {
			RespondConflict(ctx, "Task owner does not exist")
			return
		}

		RespondInternal(ctx, "Could not create task")
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	var req task.UpdateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not update task")
		return
	}

	// Non-leads get exactly one move: flipping status to DONE. Any other
	// field change needs the TECH_LEAD role.
	if !lead {
		devAllowed := req.StatusOnly() && req.Status != nil && *req.Status == task.StatusDone

		if !devAllowed {
			RespondForbidden(ctx, "Only a tech lead can change task fields other than marking it done")
			return
		}
	}

	t, err := h.repo.Update(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}

		RespondInternal(ctx, "Could not update task")
		return
	}

	ctx.JSON(http.StatusOK, t)
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	var req task.DeleteTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not delete task")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can delete tasks")
		return
	}

	err = h.repo.Delete(ctx.Request.Context(), req.ID)

	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}

		RespondInternal(ctx, "Could not delete task")
		return
	}

	RespondMessage(ctx, "Task deleted")
}
