package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamtrack/teamtrack/internal/domain/event"
	"github.com/teamtrack/teamtrack/internal/domain/task"
	"github.com/teamtrack/teamtrack/internal/domain/user"
	"github.com/teamtrack/teamtrack/internal/repo/postgres"
)

// SeedSampleData inserts a tech lead, a task owned by them and one event.
// Runs once: seeing the lead's email already present makes it a no-op.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	usersRepo := postgres.NewUsersRepo(pool, nil)
	tasksRepo := postgres.NewTasksRepo(pool, nil)
	eventsRepo := postgres.NewEventsRepo(pool, nil)

	const leadEmail = "jasperdoe@example.com"

	_, err := usersRepo.GetByEmail(ctx, leadEmail)

	if err == nil {
		return nil
	}

	if !errors.Is(err, user.ErrNotFound) {
		return err
	}

	lead, err := usersRepo.Create(ctx, user.CreateUserRequest{
		Name:  "Jasper",
		Email: leadEmail,
		Role:  user.RoleTechLead,
	})

	if err != nil {
		return err
	}

	_, err = tasksRepo.Create(ctx, task.CreateTaskRequest{
		Title:       "Build the backend",
		Description: "Set up API and database",
		Status:      task.StatusInProgress,
		UserID:      lead.ID,
	})

	if err != nil {
		return err
	}

	_, err = eventsRepo.Create(ctx, event.CreateEventRequest{
		Title:       "Weekly Planning Session",
		Description: "Zoom sync with team",
		StartTime:   "2025-06-24T10:00:00",
		EndTime:     "2025-06-24T11:00:00",
	})

	return err
}
