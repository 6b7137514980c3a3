package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/teamtrack/teamtrack/internal/authz"
	"github.com/teamtrack/teamtrack/internal/config"
	"github.com/teamtrack/teamtrack/internal/http/handlers"
	"github.com/teamtrack/teamtrack/internal/http/middlewares"
	"github.com/teamtrack/teamtrack/internal/observability"
	"github.com/teamtrack/teamtrack/internal/repo/postgres"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(log *slog.Logger, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	// middleware

	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("teamtrack"))
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(prom.GinHandleMiddleware())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))
	r.Use(middlewares.RequireJSON())

	// health
	ping := func() error {
		if pool == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return pool.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// wire up repositories
	usersRepo := postgres.NewUsersRepo(pool, prom)
	tasksRepo := postgres.NewTasksRepo(pool, prom)
	eventsRepo := postgres.NewEventsRepo(pool, prom)

	auth := authz.New(usersRepo)

	usersHandler := handlers.NewUsersHandler(usersRepo, auth)
	tasksHandler := handlers.NewTasksHandler(tasksRepo, auth)
	eventsHandler := handlers.NewEventsHandler(eventsRepo, auth)

	// target ids for PUT/DELETE travel in the JSON body, not the path
	r.GET("/users", usersHandler.ListUsers)
	r.POST("/users", usersHandler.CreateUser)
	r.PUT("/users", usersHandler.UpdateUser)
	r.DELETE("/users", usersHandler.DeleteUser)

	r.GET("/tasks", tasksHandler.ListTasks)
	r.POST("/tasks", tasksHandler.CreateTask)
	r.PUT("/tasks", tasksHandler.UpdateTask)
	r.DELETE("/tasks", tasksHandler.DeleteTask)

	r.GET("/events", eventsHandler.ListEvents)
	r.POST("/events", eventsHandler.CreateEvent)
	r.PUT("/events", eventsHandler.UpdateEvent)
	r.DELETE("/events", eventsHandler.DeleteEvent)

	return r
}
