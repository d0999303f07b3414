package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func markerID(c *fiber.Ctx) *uuid.UUID {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims := token.Claims.(jwt.MapClaims)
	raw, ok := claims["user_id"].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent"`
}

func MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	subjectID, _ := uuid.Parse(req.SubjectID)
	date, _ := time.Parse("2006-01-02", req.Date)

	entry := models.Attendance{
		StudentID:  studentID,
		SubjectID:  subjectID,
		Date:       date,
		Status:     req.Status,
		MarkedByID: markerID(c),
	}

	// Re-marking the same (student, subject, date) corrects the earlier entry.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "subject_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by_id"}),
	}).Create(&entry).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

type BulkAttendanceRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Entries   []struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Status    string `json:"status" validate:"required,oneof=present absent"`
	} `json:"entries" validate:"required,min=1,dive"`
}

func BulkMarkAttendance(c *fiber.Ctx) error {
	var req BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	subjectID, _ := uuid.Parse(req.SubjectID)
	date, _ := time.Parse("2006-01-02", req.Date)
	marker := markerID(c)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range req.Entries {
			studentID, _ := uuid.Parse(e.StudentID)
			entry := models.Attendance{
				StudentID:  studentID,
				SubjectID:  subjectID,
				Date:       date,
				Status:     e.Status,
				MarkedByID: marker,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "student_id"}, {Name: "subject_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by_id"}),
			}).Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Attendance recorded", "count": len(req.Entries)})
}

func ListStudentAttendance(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	query := database.DB.Preload("Subject").Where("student_id = ?", studentID)
	if subjectID := c.Query("subject_id"); subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var entries []models.Attendance
	query.Order("date desc").Find(&entries)

	var present int64
	for _, e := range entries {
		if e.Status == "present" {
			present++
		}
	}

	return c.JSON(fiber.Map{
		"entries":    entries,
		"present":    present,
		"total":      len(entries),
		"percentage": utils.Percent(present, int64(len(entries))),
	})
}
