package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *Handler, log *zap.Logger) {
	app.Use(recover.New())
	app.Use(requestid.New())

	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	api := app.Group("/api")

	api.Get("/health", handler.GetHealth)
	api.Get("/brief", handler.GetBrief)
	api.Post("/send", handler.SendBrief)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
			"path":  c.Path(),
		})
	})
}
