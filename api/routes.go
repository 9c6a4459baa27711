package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	SetupRoutes(app, handler)
	return app
}
