package middleware

import (
	"log"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuditTrail records every successful mutating request. The write happens off
// the request path; a lost audit row never fails the request it describes.
func AuditTrail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil || c.Method() == fiber.MethodGet {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusBadRequest {
			return nil
		}

		entry := models.AuditLog{
			Method:     c.Method(),
			Path:       c.Path(),
			StatusCode: status,
		}
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			claims := token.Claims.(jwt.MapClaims)
			if v, ok := claims["user_id"].(string); ok {
				entry.ActorID = v
			}
			if v, ok := claims["role"].(string); ok {
				entry.Role = v
			}
		}

		go func() {
			if err := database.DB.Create(&entry).Error; err != nil {
				log.Printf("Failed to record audit entry for %s %s: %v", entry.Method, entry.Path, err)
			}
		}()

		return nil
	}
}
