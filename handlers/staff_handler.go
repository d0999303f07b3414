package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStaffRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
	Designation  string `json:"designation" validate:"required"`
	JoiningDate  string `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
}

func CreateStaff(c *fiber.Ctx) error {
	var req CreateStaffRequest
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

	var staff models.Staff
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		employeeNo, err := utils.GenerateEmployeeNo(tx)
		if err != nil {
			return err
		}

		staff = models.Staff{
			FullName:     req.FullName,
			Email:        req.Email,
			EmployeeNo:   employeeNo,
			DepartmentID: departmentID,
			Designation:  req.Designation,
			Status:       "active",
		}
		if req.Phone != "" {
			staff.Phone = &req.Phone
		}
		if req.JoiningDate != "" {
			joined, _ := time.Parse("2006-01-02", req.JoiningDate)
			staff.JoiningDate = &joined
		}

		return tx.Create(&staff).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create staff member"})
	}

	return c.Status(fiber.StatusCreated).JSON(staff)
}

func ListStaff(c *fiber.Ctx) error {
	query := database.DB.Preload("Department")

	if departmentID := c.Query("department_id"); departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var staff []models.Staff
	query.Order("full_name").Find(&staff)
	return c.JSON(staff)
}

func GetStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")

	var staff models.Staff
	if err := database.DB.Preload("Department").First(&staff, "id = ?", staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
	}
	return c.JSON(staff)
}

type UpdateStaffRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=active on_leave resigned retired"`
}

func UpdateStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")

	var staff models.Staff
	if err := database.DB.First(&staff, "id = ?", staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
	}

	var req UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	staff.FullName = req.FullName
	staff.Email = req.Email
	staff.Designation = req.Designation
	staff.Status = req.Status
	if req.Phone != "" {
		staff.Phone = &req.Phone
	}
	database.DB.Save(&staff)

	return c.JSON(staff)
}

func DeleteStaff(c *fiber.Ctx) error {
	staffID := c.Params("staffId")

	result := database.DB.Delete(&models.Staff{}, "id = ?", staffID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete staff member"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
	}

	return c.JSON(fiber.Map{"message": "Staff member deleted"})
}
