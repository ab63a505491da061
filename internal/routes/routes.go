package routes

import (
	"github.com/gofiber/fiber/v2"

	"marketing-performance-service/internal/controller"
)

// Register attaches all HTTP routes to the Fiber app.
func Register(app *fiber.App, analyticsController controller.AnalyticsController) {
	api := app.Group("/api/v1")
	api.Post("/records", analyticsController.CreateRecord)
	api.Get("/reports/performance", analyticsController.GetPerformanceReport)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
