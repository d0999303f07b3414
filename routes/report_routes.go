package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/reports", middleware.Protected(), middleware.StaffRequired())
	reports.Get("/fees/collection", handlers.FeeCollectionReport)
	reports.Get("/fees/defaulters", handlers.FeeDefaulters)
	reports.Get("/attendance", handlers.AttendanceSummary)
}
