package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func TimetableRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	timetable := api.Group("/timetable", middleware.Protected(), middleware.AuditTrail())
	timetable.Get("", handlers.ListTimetableSlots)
	timetable.Post("", middleware.AdminRequired(), handlers.CreateTimetableSlot)
	timetable.Delete("/:slotId", middleware.AdminRequired(), handlers.DeleteTimetableSlot)
}
