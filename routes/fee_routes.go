package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func FeeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	fees := api.Group("/fees", middleware.Protected(), middleware.StaffRequired(), middleware.AuditTrail())
	fees.Post("", handlers.CreateFee)
	fees.Get("/:feeId", handlers.GetFee)
	fees.Post("/:feeId/pay", handlers.PayFee)
}
