package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type LeaveRequestBody struct {
	StaffID  string `json:"staff_id" validate:"required,uuid"`
	FromDate string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason   string `json:"reason" validate:"required,min=5"`
}

func SubmitLeaveRequest(c *fiber.Ctx) error {
	var req LeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to_date cannot be before from_date"})
	}

	staffID, _ := uuid.Parse(req.StaffID)
	var staff models.Staff
	if err := database.DB.First(&staff, "id = ?", staffID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff member not found"})
	}

	leave := models.LeaveRequest{
		StaffID:  staffID,
		FromDate: from,
		ToDate:   to,
		Reason:   req.Reason,
		Status:   "pending",
	}
	if err := database.DB.Create(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
	}

	return c.Status(fiber.StatusCreated).JSON(leave)
}

func ListLeaveRequests(c *fiber.Ctx) error {
	query := database.DB.Preload("Staff")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if staffID := c.Query("staff_id"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var requests []models.LeaveRequest
	query.Order("created_at desc").Find(&requests)
	return c.JSON(requests)
}

type ReviewLeaveRequestBody struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Note   string `json:"note"`
}

func ReviewLeaveRequest(c *fiber.Ctx) error {
	leaveID := c.Params("leaveId")

	var leave models.LeaveRequest
	if err := database.DB.First(&leave, "id = ?", leaveID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.Status != "pending" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending leave requests can be reviewed"})
	}

	var req ReviewLeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	leave.Status = req.Status
	if token, ok := c.Locals("user").(*jwt.Token); ok {
		claims, _ := token.Claims.(jwt.MapClaims)
		if raw, ok := claims["user_id"].(string); ok {
			if reviewerID, err := uuid.Parse(raw); err == nil {
				leave.ReviewedByID = &reviewerID
			}
		}
	}
	if req.Note != "" {
		leave.ReviewNote = &req.Note
	}
	if err := database.DB.Save(&leave).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to review leave request"})
	}

	return c.JSON(leave)
}
