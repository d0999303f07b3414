package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected(), middleware.StaffRequired(), middleware.AuditTrail())
	students.Get("", handlers.ListStudents)
	students.Post("", handlers.CreateStudent)
	students.Get("/:studentId", handlers.GetStudent)
	students.Put("/:studentId", handlers.UpdateStudent)
	students.Delete("/:studentId", middleware.AdminRequired(), handlers.DeleteStudent)

	students.Get("/:studentId/fees", handlers.ListStudentFees)
	students.Get("/:studentId/attendance", handlers.ListStudentAttendance)
}
