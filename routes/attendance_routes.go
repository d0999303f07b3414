package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func AttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	attendance := api.Group("/attendance", middleware.Protected(), middleware.StaffRequired(), middleware.AuditTrail())
	attendance.Post("", handlers.MarkAttendance)
	attendance.Post("/bulk", handlers.BulkMarkAttendance)
}
