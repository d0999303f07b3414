package handlers

import (
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// FeeCollectionReport aggregates billed and collected amounts per fee type.
// Sums stay exact decimals end to end; only the collection rate is rounded,
// and only here at the presentation boundary.
func FeeCollectionReport(c *fiber.Ctx) error {
	type billedRow struct {
		FeeType string          `json:"fee_type"`
		Billed  decimal.Decimal `json:"billed"`
		Fees    int64           `json:"fees"`
	}
	var billed []billedRow
	if err := database.DB.Model(&models.Fee{}).
		Select("fee_type, SUM(total_amount) as billed, COUNT(*) as fees").
		Group("fee_type").
		Scan(&billed).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	type collectedRow struct {
		FeeType   string
		Collected decimal.Decimal
	}
	var collected []collectedRow
	if err := database.DB.Model(&models.FeeTransaction{}).
		Select("fees.fee_type, SUM(fee_transactions.amount) as collected").
		Joins("JOIN fees ON fees.id = fee_transactions.fee_id").
		Group("fees.fee_type").
		Scan(&collected).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	collectedByType := make(map[string]decimal.Decimal, len(collected))
	for _, row := range collected {
		collectedByType[row.FeeType] = row.Collected
	}

	type summaryRow struct {
		FeeType        string          `json:"fee_type"`
		Fees           int64           `json:"fees"`
		Billed         decimal.Decimal `json:"billed"`
		Collected      decimal.Decimal `json:"collected"`
		Outstanding    decimal.Decimal `json:"outstanding"`
		CollectionRate float64         `json:"collection_rate"`
	}
	summary := make([]summaryRow, 0, len(billed))
	for _, row := range billed {
		got := collectedByType[row.FeeType]
		summary = append(summary, summaryRow{
			FeeType:        row.FeeType,
			Fees:           row.Fees,
			Billed:         row.Billed,
			Collected:      got,
			Outstanding:    row.Billed.Sub(got),
			CollectionRate: utils.DecimalPercent(got, row.Billed),
		})
	}

	type statusRow struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var statuses []statusRow
	database.DB.Model(&models.Fee{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statuses)

	return c.JSON(fiber.Map{
		"by_fee_type": summary,
		"by_status":   statuses,
	})
}

// FeeDefaulters lists unpaid fees past their due date with the amount still
// owed on each.
func FeeDefaulters(c *fiber.Ctx) error {
	var fees []models.Fee
	if err := database.DB.Preload("Student").Preload("Transactions").
		Where("status <> ? AND due_date < ?", "paid", time.Now()).
		Order("due_date").
		Find(&fees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	type defaulterRow struct {
		Fee       models.Fee      `json:"fee"`
		Paid      decimal.Decimal `json:"paid"`
		Remaining decimal.Decimal `json:"remaining"`
	}
	rows := make([]defaulterRow, 0, len(fees))
	for _, fee := range fees {
		paid := models.SumTransactions(fee.Transactions)
		rows = append(rows, defaulterRow{
			Fee:       fee,
			Paid:      paid,
			Remaining: models.RemainingBalance(fee.TotalAmount, paid),
		})
	}

	return c.JSON(fiber.Map{"defaulters": rows, "count": len(rows)})
}

// AttendanceSummary reports per-student present/total counts for a subject,
// with the percentage rounded to 2 decimal places at the boundary.
func AttendanceSummary(c *fiber.Ctx) error {
	subjectID := c.Query("subject_id")
	if subjectID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "subject_id query parameter is required"})
	}

	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subject not found"})
	}

	type countRow struct {
		StudentID   string `json:"student_id"`
		StudentName string `json:"student_name"`
		AdmissionNo string `json:"admission_no"`
		Present     int64  `json:"present"`
		Total       int64  `json:"total"`
	}
	var counts []countRow
	query := database.DB.Model(&models.Attendance{}).
		Select("attendances.student_id, students.full_name as student_name, students.admission_no, SUM(CASE WHEN attendances.status = 'present' THEN 1 ELSE 0 END) as present, COUNT(*) as total").
		Joins("JOIN students ON students.id = attendances.student_id").
		Where("attendances.subject_id = ?", subjectID)
	if from := c.Query("from"); from != "" {
		query = query.Where("attendances.date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("attendances.date <= ?", to)
	}
	if err := query.Group("attendances.student_id, students.full_name, students.admission_no").
		Order("students.full_name").
		Scan(&counts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	type summaryRow struct {
		countRow
		Percentage float64 `json:"percentage"`
	}
	rows := make([]summaryRow, 0, len(counts))
	for _, row := range counts {
		rows = append(rows, summaryRow{countRow: row, Percentage: utils.Percent(row.Present, row.Total)})
	}

	return c.JSON(fiber.Map{"subject": subject, "students": rows})
}
