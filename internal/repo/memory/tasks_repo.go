package memory

import (
	"context"
	"sync"
	"time"

	"github.com/teamtrack/teamtrack/internal/domain/task"
	"github.com/teamtrack/teamtrack/internal/utils"
)

// TasksRepo keeps tasks in a map and borrows the users repo to enforce the
// owner foreign key and to embed the owner in list results.
type TasksRepo struct {
	mu    sync.RWMutex
	items map[string]task.Task
	users *UsersRepo
}

func NewTasksRepo(users *UsersRepo) *TasksRepo {
	return &TasksRepo{
		items: make(map[string]task.Task),
		users: users,
	}
}

func (r *TasksRepo) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if _, err := r.users.GetByID(ctx, req.UserID); err != nil {
		return task.Task{}, task.ErrOwnerMissing
	}

	t := task.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[t.ID] = t
	r.mu.Unlock()

	return t, nil
}

func (r *TasksRepo) List(ctx context.Context) ([]task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Task, 0, len(r.items))

	for _, t := range r.items {
		owner, err := r.users.GetByID(ctx, t.UserID)

		if err == nil {
			ownerCopy := owner
			t.User = &ownerCopy
		}

		out = append(out, t)
	}

	return out, nil
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]

	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	return t, nil
}

func (r *TasksRepo) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[req.ID]

	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	if req.Title != nil {
		t.Title = *req.Title
	}

	if req.Description != nil {
		t.Description = *req.Description
	}

	if req.Status != nil {
		t.Status = *req.Status
	}

	if req.DueDate != nil {
		due := utils.ParseTimestamp(*req.DueDate)
		t.DueDate = &due
	}

	t.UpdatedAt = time.Now().UTC()
	r.items[req.ID] = t

	return t, nil
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return task.ErrNotFound
	}

	delete(r.items, id)

	return nil
}
