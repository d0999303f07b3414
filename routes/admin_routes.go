package routes

import (
	"github.com/anjiri1684/college_erp/handlers"
	"github.com/anjiri1684/college_erp/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/backup", handlers.DownloadBackup)
	admin.Get("/audit-logs", handlers.ListAuditLogs)
}
