package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/teamtrack/teamtrack/internal/utils"
)

func NewFromCreateRequest(req CreateEventRequest) Event {
	now := time.Now().UTC()

	return Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		StartTime:   utils.ParseTimestamp(req.StartTime),
		EndTime:     utils.ParseTimestamp(req.EndTime),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
