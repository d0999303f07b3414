package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/gofiber/fiber/v2"
)

type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	StartsAt    string `json:"starts_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt      string `json:"ends_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func CreateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startsAt, _ := time.Parse(time.RFC3339, req.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339, req.EndsAt)
	if !endsAt.After(startsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ends_at must be after starts_at"})
	}

	event := models.Event{
		Title:    req.Title,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Venue != "" {
		event.Venue = &req.Venue
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func ListEvents(c *fiber.Ctx) error {
	query := database.DB

	if from := c.Query("from"); from != "" {
		query = query.Where("starts_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("starts_at <= ?", to)
	}

	var events []models.Event
	query.Order("starts_at").Find(&events)
	return c.JSON(events)
}

func UpdateEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	var event models.Event
	if err := database.DB.First(&event, "id = ?", eventID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startsAt, _ := time.Parse(time.RFC3339, req.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339, req.EndsAt)
	if !endsAt.After(startsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ends_at must be after starts_at"})
	}

	event.Title = req.Title
	event.StartsAt = startsAt
	event.EndsAt = endsAt
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Venue != "" {
		event.Venue = &req.Venue
	}
	database.DB.Save(&event)

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	eventID := c.Params("eventId")

	result := database.DB.Delete(&models.Event{}, "id = ?", eventID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete event"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	return c.JSON(fiber.Map{"message": "Event deleted"})
}
