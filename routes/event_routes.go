package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func EventRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	events := api.Group("/events", middleware.Protected(), middleware.AuditTrail())
	events.Get("", handlers.ListEvents)
	events.Post("", middleware.StaffRequired(), handlers.CreateEvent)
	events.Put("/:eventId", middleware.StaffRequired(), handlers.UpdateEvent)
	events.Delete("/:eventId", middleware.AdminRequired(), handlers.DeleteEvent)
}
