package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func StaffRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	staff := api.Group("/staff", middleware.Protected(), middleware.AdminRequired(), middleware.AuditTrail())
	staff.Get("", handlers.ListStaff)
	staff.Post("", handlers.CreateStaff)
	staff.Get("/:staffId", handlers.GetStaff)
	staff.Put("/:staffId", handlers.UpdateStaff)
	staff.Delete("/:staffId", handlers.DeleteStaff)
}
