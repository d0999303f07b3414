package handlers

import (
	"errors"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var validate = validator.New()

type CreateSlotRequest struct {
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	SubjectID    string `json:"subject_id" validate:"required,uuid"`
	StaffID      string `json:"staff_id" validate:"required,uuid"`
	Semester     int    `json:"semester" validate:"required,min=1,max=12"`
	DayOfWeek    string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	RoomNumber   string `json:"room_number" validate:"required"`
}

func CreateTimetableSlot(c *fiber.Ctx) error {
	var req CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := models.ClockMinutes(req.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be in HH:MM format"})
	}
	end, err := models.ClockMinutes(req.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be in HH:MM format"})
	}
	if start >= end {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be after start_time"})
	}

	departmentID, _ := uuid.Parse(req.DepartmentID)
	subjectID, _ := uuid.Parse(req.SubjectID)
	staffID, _ := uuid.Parse(req.StaffID)

	slot := models.TimetableSlot{
		DepartmentID: departmentID,
		SubjectID:    subjectID,
		StaffID:      staffID,
		Semester:     req.Semester,
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		RoomNumber:   req.RoomNumber,
	}

	var conflict *models.TimetableSlot
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// The staff row is the serialization point. Locking the slot rows
		// themselves cannot work: an empty staff/day set leaves nothing to
		// lock, and a waiter's snapshot never includes the holder's freshly
		// inserted slot. Locking the always-present staff row queues
		// concurrent proposals, so the read below always sees every
		// committed slot for this staff member.
		var staff models.Staff
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&staff, "id = ?", staffID).Error; err != nil {
			return err
		}

		var existing []models.TimetableSlot
		if err := tx.Where("staff_id = ? AND day_of_week = ?", staffID, req.DayOfWeek).
			Find(&existing).Error; err != nil {
			return err
		}

		if hit := models.FindConflictingSlot(existing, slot); hit != nil {
			conflict = hit
			return errors.New("staff member is already scheduled in an overlapping window on " + req.DayOfWeek)
		}

		return tx.Create(&slot).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
		}
		if conflict != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":            err.Error(),
				"conflicting_slot": conflict,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create timetable slot"})
	}

	database.DB.Preload("Department").Preload("Subject").Preload("Staff").First(&slot, "id = ?", slot.ID)

	return c.Status(fiber.StatusCreated).JSON(slot)
}

func ListTimetableSlots(c *fiber.Ctx) error {
	query := database.DB.Preload("Subject").Preload("Staff")

	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}
	if day := c.Query("day"); day != "" {
		query = query.Where("day_of_week = ?", day)
	}
	if departmentID := c.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if semester := c.Query("semester"); semester != "" {
		query = query.Where("semester = ?", semester)
	}

	var slots []models.TimetableSlot
	query.Order("day_of_week, start_time").Find(&slots)
	return c.JSON(slots)
}

// Slots are never edited in place; a reschedule is a delete followed by a new
// proposal so it passes back through the conflict check.
func DeleteTimetableSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")

	var slot models.TimetableSlot
	if err := database.DB.First(&slot, "id = ?", slotID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Timetable slot not found"})
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete timetable slot"})
	}

	return c.JSON(fiber.Map{"message": "Timetable slot deleted"})
}
