package handlers

import (
	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStudentRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	DepartmentID    string `json:"department_id" validate:"required,uuid"`
	Semester        int    `json:"semester" validate:"required,min=1,max=12"`
	YearOfAdmission int    `json:"year_of_admission" validate:"required,min=1990"`
	GuardianName    string `json:"guardian_name"`
	GuardianPhone   string `json:"guardian_phone"`
	Address         string `json:"address"`
}

func CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	departmentID, _ := uuid.Parse(req.DepartmentID)

	var department models.Department
	if err := database.DB.First(&department, "id = ?", departmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Department not found"})
	}

	var student models.Student
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		admissionNo, err := utils.GenerateAdmissionNo(tx)
		if err != nil {
			return err
		}

		student = models.Student{
			FullName:        req.FullName,
			Email:           req.Email,
			AdmissionNo:     admissionNo,
			DepartmentID:    departmentID,
			Semester:        req.Semester,
			YearOfAdmission: req.YearOfAdmission,
			Status:          "active",
		}
		if req.Phone != "" {
			student.Phone = &req.Phone
		}
		if req.GuardianName != "" {
			student.GuardianName = &req.GuardianName
		}
		if req.GuardianPhone != "" {
			student.GuardianPhone = &req.GuardianPhone
		}
		if req.Address != "" {
			student.Address = &req.Address
		}

		return tx.Create(&student).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func ListStudents(c *fiber.Ctx) error {
	query := database.DB.Preload("Department")

	if departmentID := c.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if semester := c.Query("semester"); semester != "" {
		query = query.Where("semester = ?", semester)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var students []models.Student
	query.Order("full_name").Find(&students)
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.Preload("Department").First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

type UpdateStudentRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Semester      int    `json:"semester" validate:"required,min=1,max=12"`
	Status        string `json:"status" validate:"required,oneof=active suspended graduated withdrawn"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	Address       string `json:"address"`
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student.FullName = req.FullName
	student.Email = req.Email
	student.Semester = req.Semester
	student.Status = req.Status
	if req.Phone != "" {
		student.Phone = &req.Phone
	}
	if req.GuardianName != "" {
		student.GuardianName = &req.GuardianName
	}
	if req.GuardianPhone != "" {
		student.GuardianPhone = &req.GuardianPhone
	}
	if req.Address != "" {
		student.Address = &req.Address
	}
	database.DB.Save(&student)

	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	result := database.DB.Delete(&models.Student{}, "id = ?", studentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"message": "Student deleted"})
}
