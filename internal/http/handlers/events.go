package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack/teamtrack/internal/domain/event"
)

type EventsStore interface {
	Create(ctx context.Context, req event.CreateEventRequest) (event.Event, error)
	List(ctx context.Context) ([]event.Event, error)
	Update(ctx context.Context, req event.UpdateEventRequest) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventsHandler struct {
	repo EventsStore
	auth RoleChecker
}

func NewEventsHandler(repo EventsStore, auth RoleChecker) *EventsHandler {
	return &EventsHandler{repo: repo, auth: auth}
}

func (h *EventsHandler) ListEvents(ctx *gin.Context) {
	events, err := h.repo.List(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Failed to fetch events")
		return
	}

	ctx.JSON(http.StatusOK, events)
}

func (h *EventsHandler) CreateEvent(ctx *gin.Context) {
	var req event.CreateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not create event")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can create events")
		return
	}

	e, err := h.repo.Create(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create event")
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

func (h *EventsHandler) UpdateEvent(ctx *gin.Context) {
	var req event.UpdateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not update event")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can update events")
		return
	}

	e, err := h.repo.Update(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}

		RespondInternal(ctx, "Could not update event")
		return
	}

	ctx.JSON(http.StatusOK, e)
}

func (h *EventsHandler) DeleteEvent(ctx *gin.Context) {
	var req event.DeleteEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	lead, err := h.auth.IsTechLead(ctx.Request.Context(), req.UserID)

	if err != nil {
		RespondInternal(ctx, "Could not delete event")
		return
	}

	if !lead {
		RespondForbidden(ctx, "Only a tech lead can delete events")
		return
	}

	err = h.repo.Delete(ctx.Request.Context(), req.ID)

	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}

		RespondInternal(ctx, "Could not delete event")
		return
	}

	RespondMessage(ctx, "Event deleted")
}
