package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func LeaveRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	leaves := api.Group("/leaves", middleware.Protected(), middleware.StaffRequired(), middleware.AuditTrail())
	leaves.Get("", handlers.ListLeaveRequests)
	leaves.Post("", handlers.SubmitLeaveRequest)
	leaves.Post("/:leaveId/review", middleware.AdminRequired(), handlers.ReviewLeaveRequest)
}
