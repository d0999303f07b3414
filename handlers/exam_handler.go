package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type CreateExamRequest struct {
	Name      string `json:"name" validate:"required"`
	Semester  int    `json:"semester" validate:"required,min=1,max=12"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func CreateExam(c *fiber.Ctx) error {
	var req CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	exam := models.Exam{
		Name:     req.Name,
		Semester: req.Semester,
	}
	if req.StartDate != "" {
		start, _ := time.Parse("2006-01-02", req.StartDate)
		exam.StartDate = &start
	}
	if req.EndDate != "" {
		end, _ := time.Parse("2006-01-02", req.EndDate)
		exam.EndDate = &end
	}
	if exam.StartDate != nil && exam.EndDate != nil && exam.EndDate.Before(*exam.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date cannot be before start_date"})
	}

	if err := database.DB.Create(&exam).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(fiber.StatusCreated).JSON(exam)
}

func ListExams(c *fiber.Ctx) error {
	query := database.DB
	if semester := c.Query("semester"); semester != "" {
		query = query.Where("semester = ?", semester)
	}

	var exams []models.Exam
	query.Order("start_date desc").Find(&exams)
	return c.JSON(exams)
}

func DeleteExam(c *fiber.Ctx) error {
	examID := c.Params("examId")

	result := database.DB.Delete(&models.Exam{}, "id = ?", examID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete exam"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	return c.JSON(fiber.Map{"message": "Exam deleted"})
}

type EnterMarkRequest struct {
	StudentID     string `json:"student_id" validate:"required,uuid"`
	SubjectID     string `json:"subject_id" validate:"required,uuid"`
	MarksObtained int    `json:"marks_obtained" validate:"min=0"`
	MaxMarks      int    `json:"max_marks" validate:"required,min=1"`
}

func EnterMark(c *fiber.Ctx) error {
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	var req EnterMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.MarksObtained > req.MaxMarks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "marks_obtained cannot exceed max_marks"})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	mark := models.Mark{
		ExamID:        exam.ID,
		StudentID:     studentID,
		SubjectID:     subjectID,
		MarksObtained: req.MarksObtained,
		MaxMarks:      req.MaxMarks,
	}

	// Re-entering a mark for the same (exam, student, subject) replaces it.
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exam_id"}, {Name: "student_id"}, {Name: "subject_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"marks_obtained", "max_marks", "updated_at"}),
	}).Create(&mark).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record mark"})
	}

	return c.Status(fiber.StatusCreated).JSON(mark)
}

func ListExamMarks(c *fiber.Ctx) error {
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	query := database.DB.Preload("Student").Preload("Subject").Where("exam_id = ?", examID)
	if subjectID := c.Query("subject_id"); subjectID != "" {
		query = query.Where("subject_id = ?", subjectID)
	}

	var marks []models.Mark
	query.Find(&marks)
	return c.JSON(marks)
}

func StudentExamSummary(c *fiber.Ctx) error {
	examID := c.Params("examId")
	studentID := c.Params("studentId")

	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	var marks []models.Mark
	database.DB.Preload("Subject").
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Find(&marks)

	var obtained, max int64
	for _, m := range marks {
		obtained += int64(m.MarksObtained)
		max += int64(m.MaxMarks)
	}

	return c.JSON(fiber.Map{
		"exam":           exam,
		"marks":          marks,
		"total_obtained": obtained,
		"total_max":      max,
		"percentage":     utils.Percent(obtained, max),
	})
}
