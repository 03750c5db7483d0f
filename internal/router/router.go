package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/quantix/api/handler"
)

type Handlers struct {
	Health   *apiHandler.HealthHandler
	Status   *apiHandler.StatusHandler
	Profile  *apiHandler.ProfileHandler
	Task     *apiHandler.TaskHandler
	Focus    *apiHandler.FocusHandler
	Streak   *apiHandler.StreakHandler
	Journal  *apiHandler.JournalHandler
	Goal     *apiHandler.GoalHandler
	Settings *apiHandler.SettingsHandler
}

// New registers every route; wrap decorates each API handler.
func New(handlers Handlers, wrap func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	if wrap == nil {
		wrap = func(h fasthttp.RequestHandler) fasthttp.RequestHandler { return h }
	}
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	v1 := r.Group("/api/v1")
	v1.GET("/status", wrap(handlers.Status.Get))

	v1.GET("/profile", wrap(handlers.Profile.GetProfile))
	v1.PUT("/profile", wrap(handlers.Profile.UpdateProfile))
	v1.POST("/profile/reset-level", wrap(handlers.Profile.ResetLevel))

	v1.GET("/tasks", wrap(handlers.Task.GetTasks))
	v1.POST("/tasks", wrap(handlers.Task.CreateTask))
	v1.POST("/tasks/{id}/toggle", wrap(handlers.Task.ToggleTask))
	v1.DELETE("/tasks/{id}", wrap(handlers.Task.DeleteTask))

	v1.GET("/lists", wrap(handlers.Task.GetLists))
	v1.POST("/lists", wrap(handlers.Task.CreateList))
	v1.GET("/lists/stats", wrap(handlers.Task.GetListStats))
	v1.PUT("/lists/{id}", wrap(handlers.Task.UpdateList))

	v1.GET("/focus", wrap(handlers.Focus.Get))
	v1.GET("/focus/sessions", wrap(handlers.Focus.History))
	v1.POST("/focus/start", wrap(handlers.Focus.Start))
	v1.POST("/focus/pause", wrap(handlers.Focus.Pause))
	v1.POST("/focus/resume", wrap(handlers.Focus.Resume))
	v1.POST("/focus/stop", wrap(handlers.Focus.Stop))

	v1.GET("/streak", wrap(handlers.Streak.Get))
	v1.POST("/streak/reset", wrap(handlers.Streak.Reset))

	v1.GET("/journal", wrap(handlers.Journal.List))
	v1.POST("/journal", wrap(handlers.Journal.Create))
	v1.PUT("/journal/{id}", wrap(handlers.Journal.Update))
	v1.DELETE("/journal/{id}", wrap(handlers.Journal.Delete))

	v1.GET("/goals", wrap(handlers.Goal.List))
	v1.POST("/goals", wrap(handlers.Goal.Create))
	v1.PUT("/goals/{id}/progress", wrap(handlers.Goal.UpdateProgress))
	v1.DELETE("/goals/{id}", wrap(handlers.Goal.Delete))

	v1.GET("/settings", wrap(handlers.Settings.Get))
	v1.PUT("/settings", wrap(handlers.Settings.Update))

	return r
}
