package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func ExamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exams := api.Group("/exams", middleware.Protected(), middleware.StaffRequired(), middleware.AuditTrail())
	exams.Get("", handlers.ListExams)
	exams.Post("", handlers.CreateExam)
	exams.Delete("/:examId", middleware.AdminRequired(), handlers.DeleteExam)

	exams.Post("/:examId/marks", handlers.EnterMark)
	exams.Get("/:examId/marks", handlers.ListExamMarks)
	exams.Get("/:examId/students/:studentId/summary", handlers.StudentExamSummary)
}
