package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamtrack/teamtrack/internal/domain/task"
	"github.com/teamtrack/teamtrack/internal/domain/user"
	"github.com/teamtrack/teamtrack/internal/observability"
	"github.com/teamtrack/teamtrack/internal/utils"
)

type TasksRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewTasksRepo(pool *pgxpool.Pool, prom *observability.Prom) *TasksRepo {
	return &TasksRepo{pool: pool, prom: prom}
}

func (r *TasksRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}

	return fn()
}

func (r *TasksRepo) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	t := task.NewFromCreateRequest(req)

	err := r.observe("tasks.create", func() error {
		_, execErr := r.pool.Exec(ctx,
			`INSERT INTO tasks(id, title, description, status, due_date, user_id, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
			t.ID, t.Title, t.Description, t.Status, t.DueDate, t.UserID, t.CreatedAt, t.UpdatedAt)

		return execErr
	})

	if err != nil {
		// a user_id that is not UUID syntax can never name a real owner
		if isForeignKeyViolation(err) || isPgCode(err, invalidTextRepresentationCode) {
			return task.Task{}, task.ErrOwnerMissing
		}

		return task.Task{}, err
	}

	return t, nil
}

// List returns every task joined with its owning user.
func (r *TasksRepo) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task

	err := r.observe("tasks.list", func() error {
		rows, qErr := r.pool.Query(ctx,
			`SELECT t.id, t.title, t.description, t.status, t.due_date, t.user_id, t.created_at, t.updated_at,
			        u.id, u.name, u.email, u.role, u.created_at, u.updated_at
			 FROM tasks t
			 JOIN users u ON u.id = t.user_id
			 ORDER BY t.created_at ASC, t.id ASC`)

		if qErr != nil {
			return qErr
		}

		defer rows.Close()

		out = make([]task.Task, 0)

		for rows.Next() {
			var t task.Task
			var owner user.User

			sErr := rows.Scan(
				&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.UserID, &t.CreatedAt, &t.UpdatedAt,
				&owner.ID, &owner.Name, &owner.Email, &owner.Role, &owner.CreatedAt, &owner.UpdatedAt,
			)

			if sErr != nil {
				return sErr
			}

			t.User = &owner
			out = append(out, t)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	var t task.Task

	err := r.observe("tasks.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT id, title, description, status, due_date, user_id, created_at, updated_at
			 FROM tasks
			 WHERE id = $1`, id).
			Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	})

	if err != nil {
		if isRowMissing(err) {
			return task.Task{}, task.ErrNotFound
		}

		return task.Task{}, err
	}

	return t, nil
}

func (r *TasksRepo) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}

	argsPosition := 2

	if req.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argsPosition))
		args = append(args, *req.Title)
		argsPosition++
	}

	if req.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argsPosition))
		args = append(args, *req.Description)
		argsPosition++
	}

	if req.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argsPosition))
		args = append(args, *req.Status)
		argsPosition++
	}

	if req.DueDate != nil {
		sets = append(sets, fmt.Sprintf("due_date = $%d", argsPosition))
		args = append(args, utils.ParseTimestamp(*req.DueDate))
		argsPosition++
	}

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, title, description, status, due_date, user_id, created_at, updated_at`

	var t task.Task

	err := r.observe("tasks.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).
			Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	})

	if err != nil {
		if isRowMissing(err) {
			return task.Task{}, task.ErrNotFound
		}

		return task.Task{}, err
	}

	return t, nil
}

func (r *TasksRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.observe("tasks.delete", func() error {
		tag, execErr := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)

		if execErr != nil {
			return execErr
		}

		affected = tag.RowsAffected()

		return nil
	})

	if err != nil {
		if isRowMissing(err) {
			return task.ErrNotFound
		}

		return err
	}

	if affected == 0 {
		return task.ErrNotFound
	}

	return nil
}
