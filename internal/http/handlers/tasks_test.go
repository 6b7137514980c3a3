package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/teamtrack/teamtrack/internal/domain/task"
	"github.com/teamtrack/teamtrack/internal/domain/user"
	"github.com/teamtrack/teamtrack/internal/http/handlers"
)

type fakeTasksRepo struct {
	createFn func(ctx context.Context, req task.CreateTaskRequest) (task.Task, error)
	listFn   func(ctx context.Context) ([]task.Task, error)
	updateFn func(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeTasksRepo) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}

	return task.Task{}, nil
}

func (f *fakeTasksRepo) List(ctx context.Context) ([]task.Task, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return nil, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, req)
	}

	return task.Task{}, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}

	return nil
}

func TestCreateTaskHandler(t *testing.T) {
	leadID := newUUID()

	tests := []struct {
		name           string
		body           string
		repoSetUp      func(*fakeTasksRepo)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"title": "T1", "description": "d", "status": "IN_PROGRESS", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.createFn = func(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
					return task.NewFromCreateRequest(req), nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing_required_fields",
			body:           `{"title": "T1", "userId": "` + leadID + `"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown_status",
			body:           `{"title": "T1", "description": "d", "status": "SHIPPED", "userId": "` + leadID + `"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "not_a_lead",
			body:           `{"title": "T1", "description": "d", "status": "IN_PROGRESS", "userId": "` + newUUID() + `"}`,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name: "owner_missing",
			body: `{"title": "T1", "description": "d", "status": "IN_PROGRESS", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.createFn = func(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
					return task.Task{}, task.ErrOwnerMissing
				}
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "repo_error",
			body: `{"title": "T1", "description": "d", "status": "IN_PROGRESS", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.createFn = func(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
					return task.Task{}, errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTasksRepo{}

			if tt.repoSetUp != nil {
				tt.repoSetUp(repo)
			}

			h := handlers.NewTasksHandler(repo, leadChecker(leadID))
			r := setupRouter(http.MethodPost, "/tasks", h.CreateTask)

			w := doJSON(t, r, http.MethodPost, "/tasks", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var got task.Task

				if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}

				if got.ID == "" || got.Title != "T1" || got.Status != task.StatusInProgress {
					t.Fatalf("unexpected created task: %s", w.Body.String())
				}
			}
		})
	}
}

func TestListTasksHandler_EmbedsOwner(t *testing.T) {
	now := time.Now().UTC()
	ownerID := newUUID()

	repo := &fakeTasksRepo{
		listFn: func(ctx context.Context) ([]task.Task, error) {
			return []task.Task{
				{
					ID:          newUUID(),
					Title:       "T1",
					Description: "d",
					Status:      task.StatusInProgress,
					UserID:      ownerID,
					User: &user.User{
						ID: ownerID, Name: "Ann", Email: "ann@x.com", Role: user.RoleDev,
						CreatedAt: now, UpdatedAt: now,
					},
					CreatedAt: now,
					UpdatedAt: now,
				},
			}, nil
		},
	}

	h := handlers.NewTasksHandler(repo, leadChecker())
	r := setupRouter(http.MethodGet, "/tasks", h.ListTasks)

	w := doJSON(t, r, http.MethodGet, "/tasks", "")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var got []task.Task

	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected a JSON array: %v", err)
	}

	if len(got) != 1 || got[0].User == nil || got[0].User.Name != "Ann" {
		t.Fatalf("expected the owning user embedded, body=%s", w.Body.String())
	}
}

func TestUpdateTaskHandler_RoleGate(t *testing.T) {
	leadID := newUUID()
	devID := newUUID()
	taskID := newUUID()

	echoUpdate := func(f *fakeTasksRepo) {
		f.updateFn = func(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
			t := task.Task{ID: req.ID, Title: "T1", Description: "d", Status: task.StatusInProgress, UserID: devID}

			if req.Title != nil {
				t.Title = *req.Title
			}

			if req.Status != nil {
				t.Status = *req.Status
			}

			return t, nil
		}
	}

	tests := []struct {
		name           string
		body           string
		repoSetUp      func(*fakeTasksRepo)
		wantStatusCode int
	}{
		{
			name:           "dev_may_mark_done",
			body:           `{"id": "` + taskID + `", "status": "DONE", "userId": "` + devID + `"}`,
			repoSetUp:      echoUpdate,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "dev_may_not_change_title",
			body:           `{"id": "` + taskID + `", "title": "new", "userId": "` + devID + `"}`,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "dev_may_not_set_other_status",
			body:           `{"id": "` + taskID + `", "status": "IN_PROGRESS", "userId": "` + devID + `"}`,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "dev_may_not_mix_done_with_other_fields",
			body:           `{"id": "` + taskID + `", "status": "DONE", "title": "new", "userId": "` + devID + `"}`,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "lead_may_change_anything",
			body:           `{"id": "` + taskID + `", "title": "new", "dueDate": "2026-01-15", "userId": "` + leadID + `"}`,
			repoSetUp:      echoUpdate,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing_id",
			body:           `{"status": "DONE", "userId": "` + devID + `"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "not_found",
			body: `{"id": "` + newUUID() + `", "status": "DONE", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.updateFn = func(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
					return task.Task{}, task.ErrNotFound
				}
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTasksRepo{}

			if tt.repoSetUp != nil {
				tt.repoSetUp(repo)
			}

			h := handlers.NewTasksHandler(repo, leadChecker(leadID))
			r := setupRouter(http.MethodPut, "/tasks", h.UpdateTask)

			w := doJSON(t, r, http.MethodPut, "/tasks", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestUpdateTaskHandler_ForbiddenDoesNotTouchRepo(t *testing.T) {
	devID := newUUID()

	called := false
	repo := &fakeTasksRepo{
		updateFn: func(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
			called = true
			return task.Task{}, nil
		},
	}

	h := handlers.NewTasksHandler(repo, leadChecker())
	r := setupRouter(http.MethodPut, "/tasks", h.UpdateTask)

	w := doJSON(t, r, http.MethodPut, "/tasks", `{"id": "`+newUUID()+`", "title": "new", "userId": "`+devID+`"}`)

	if w.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", w.Code)
	}

	if called {
		t.Fatalf("repo must not be called on a forbidden update")
	}
}

func TestDeleteTaskHandler(t *testing.T) {
	leadID := newUUID()
	taskID := newUUID()

	tests := []struct {
		name           string
		body           string
		repoSetUp      func(*fakeTasksRepo)
		wantStatusCode int
	}{
		{
			name:           "success",
			body:           `{"id": "` + taskID + `", "userId": "` + leadID + `"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing_fields",
			body:           `{"id": "` + taskID + `"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "not_a_lead",
			body:           `{"id": "` + taskID + `", "userId": "` + newUUID() + `"}`,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name: "not_found",
			body: `{"id": "` + newUUID() + `", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.deleteFn = func(ctx context.Context, id string) error {
					return task.ErrNotFound
				}
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "repo_error",
			body: `{"id": "` + taskID + `", "userId": "` + leadID + `"}`,
			repoSetUp: func(f *fakeTasksRepo) {
				f.deleteFn = func(ctx context.Context, id string) error {
					return errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTasksRepo{}

			if tt.repoSetUp != nil {
				tt.repoSetUp(repo)
			}

			h := handlers.NewTasksHandler(repo, leadChecker(leadID))
			r := setupRouter(http.MethodDelete, "/tasks", h.DeleteTask)

			w := doJSON(t, r, http.MethodDelete, "/tasks", tt.body)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}
