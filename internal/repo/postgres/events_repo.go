package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamtrack/teamtrack/internal/domain/event"
	"github.com/teamtrack/teamtrack/internal/observability"
	"github.com/teamtrack/teamtrack/internal/utils"
)

type EventsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewEventsRepo(pool *pgxpool.Pool, prom *observability.Prom) *EventsRepo {
	return &EventsRepo{pool: pool, prom: prom}
}

func (r *EventsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}

	return fn()
}

func (r *EventsRepo) Create(ctx context.Context, req event.CreateEventRequest) (event.Event, error) {
	e := event.NewFromCreateRequest(req)

	err := r.observe("events.create", func() error {
		_, execErr := r.pool.Exec(ctx,
			`INSERT INTO events(id, title, description, start_time, end_time, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.Title, e.Description, e.StartTime, e.EndTime, e.CreatedAt, e.UpdatedAt)

		return execErr
	})

	if err != nil {
		return event.Event{}, err
	}

	return e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	var out []event.Event

	err := r.observe("events.list", func() error {
		rows, qErr := r.pool.Query(ctx,
			`SELECT id, title, description, start_time, end_time, created_at, updated_at
			 FROM events
			 ORDER BY start_time ASC, id ASC`)

		if qErr != nil {
			return qErr
		}

		defer rows.Close()

		out = make([]event.Event, 0)

		for rows.Next() {
			var e event.Event

			if sErr := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt); sErr != nil {
				return sErr
			}

			out = append(out, e)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	var e event.Event

	err := r.observe("events.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT id, title, description, start_time, end_time, created_at, updated_at
			 FROM events
			 WHERE id = $1`, id).
			Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt)
	})

	if err != nil {
		if isRowMissing(err) {
			return event.Event{}, event.ErrNotFound
		}

		return event.Event{}, err
	}

	return e, nil
}

func (r *EventsRepo) Update(ctx context.Context, req event.UpdateEventRequest) (event.Event, error) {
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

	if req.StartTime != nil {
		sets = append(sets, fmt.Sprintf("start_time = $%d", argsPosition))
		args = append(args, utils.ParseTimestamp(*req.StartTime))
		argsPosition++
	}

	if req.EndTime != nil {
		sets = append(sets, fmt.Sprintf("end_time = $%d", argsPosition))
		args = append(args, utils.ParseTimestamp(*req.EndTime))
		argsPosition++
	}

	query := `UPDATE events SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1
		RETURNING id, title, description, start_time, end_time, created_at, updated_at`

	var e event.Event

	err := r.observe("events.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).
			Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt)
	})

	if err != nil {
		if isRowMissing(err) {
			return event.Event{}, event.ErrNotFound
		}

		return event.Event{}, err
	}

	return e, nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	var affected int64

	err := r.observe("events.delete", func() error {
		tag, execErr := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)

		if execErr != nil {
			return execErr
		}

		affected = tag.RowsAffected()

		return nil
	})

	if err != nil {
		if isRowMissing(err) {
			return event.ErrNotFound
		}

		return err
	}

	if affected == 0 {
		return event.ErrNotFound
	}

	return nil
}
