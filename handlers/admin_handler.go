package handlers

import (
	"bufio"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/services"
	"github.com/gofiber/fiber/v2"
)

// DownloadBackup streams the dump as it is generated rather than holding the
// whole snapshot in memory.
func DownloadBackup(c *fiber.Ctx) error {
	c.Set("Content-Type", "application/sql")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"backup_%s.sql\"", time.Now().Format("20060102_150405")))

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if err := services.WriteSQLDump(w); err != nil {
			log.Printf("Backup stream aborted: %v", err)
		}
	})
	return nil
}

func ListAuditLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	query := database.DB.Model(&models.AuditLog{})
	if actorID := c.Query("actor_id"); actorID != "" {
		query = query.Where("actor_id = ?", actorID)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}

	var total int64
	query.Count(&total)

	var logs []models.AuditLog
	query.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs)

	return c.JSON(fiber.Map{
		"logs":      logs,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}
