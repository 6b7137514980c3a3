package memory

import (
	"context"
	"sync"
	"time"

	"github.com/teamtrack/teamtrack/internal/domain/event"
	"github.com/teamtrack/teamtrack/internal/utils"
)

type EventsRepo struct {
	mu    sync.RWMutex
	items map[string]event.Event
}

func NewEventsRepo() *EventsRepo {
	return &EventsRepo{
		items: make(map[string]event.Event),
	}
}

func (r *EventsRepo) Create(ctx context.Context, req event.CreateEventRequest) (event.Event, error) {
	e := event.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[e.ID] = e
	r.mu.Unlock()

	return e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))

	for _, e := range r.items {
		out = append(out, e)
	}

	return out, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]

	if !ok {
		return event.Event{}, event.ErrNotFound
	}

	return e, nil
}

func (r *EventsRepo) Update(ctx context.Context, req event.UpdateEventRequest) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[req.ID]

	if !ok {
		return event.Event{}, event.ErrNotFound
	}

	if req.Title != nil {
		e.Title = *req.Title
	}

	if req.Description != nil {
		e.Description = *req.Description
	}

	if req.StartTime != nil {
		e.StartTime = utils.ParseTimestamp(*req.StartTime)
	}

	if req.EndTime != nil {
		e.EndTime = utils.ParseTimestamp(*req.EndTime)
	}

	e.UpdatedAt = time.Now().UTC()
	r.items[req.ID] = e

	return e, nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return event.ErrNotFound
	}

	delete(r.items, id)

	return nil
}
