package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
	"github.com/anjiri1684/college_erp/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateFeeRequest struct {
	StudentID   string          `json:"student_id" validate:"required,uuid"`
	FeeType     string          `json:"fee_type" validate:"required,oneof=tuition hostel transport library exam other"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`

	PaidAmount  decimal.Decimal `json:"paid_amount"`
	PaymentMode string          `json:"payment_mode" validate:"omitempty,oneof=cash card upi cheque bank_transfer"`
	Remarks     string          `json:"remarks"`
}

func CreateFee(c *fiber.Ctx) error {
	var req CreateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.TotalAmount.Sign() <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "total_amount must be greater than zero"})
	}
	if req.PaidAmount.Sign() < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "paid_amount cannot be negative"})
	}
	if req.PaidAmount.GreaterThan(req.TotalAmount) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "paid_amount cannot exceed total_amount"})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	fee := models.Fee{
		StudentID:   studentID,
		FeeType:     req.FeeType,
		TotalAmount: req.TotalAmount,
		DueDate:     dueDate,
		Status:      models.DeriveFeeStatus(req.TotalAmount, req.PaidAmount),
	}

	// The fee row and its first transaction land together or not at all, so a
	// crash cannot leave a nonzero implied payment with no transaction row.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&fee).Error; err != nil {
			return err
		}

		if req.PaidAmount.Sign() > 0 {
			receiptNo, err := utils.GenerateReceiptNo(tx)
			if err != nil {
				return err
			}

			mode := req.PaymentMode
			if mode == "" {
				mode = "cash"
			}

			txn := models.FeeTransaction{
				FeeID:          fee.ID,
				Amount:         req.PaidAmount,
				PaymentMode:    mode,
				TransactionRef: receiptNo,
				PaymentDate:    time.Now(),
			}
			if req.Remarks != "" {
				txn.Remarks = &req.Remarks
			}
			if err := tx.Create(&txn).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	database.DB.Preload("Transactions").First(&fee, "id = ?", fee.ID)

	return c.Status(fiber.StatusCreated).JSON(fee)
}

// isDuplicateKey reports whether err is a translated unique violation, such
// as a payer re-submitting an external transaction_ref.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

type PayFeeRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	PaymentMode    string          `json:"payment_mode" validate:"required,oneof=cash card upi cheque bank_transfer"`
	PaymentDate    string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	TransactionRef string          `json:"transaction_ref"`
	Remarks        string          `json:"remarks"`
}

func PayFee(c *fiber.Ctx) error {
	feeID := c.Params("feeId")

	var req PayFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Amount.Sign() <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be greater than zero"})
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		paymentDate, _ = time.Parse("2006-01-02", req.PaymentDate)
	}

	var fee models.Fee
	var remaining decimal.Decimal
	overpayment := false

	// The fee row stays locked from the remaining-balance read through the
	// transaction insert, so two simultaneous payments cannot both pass the
	// check against the same balance.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&fee, "id = ?", feeID).Error; err != nil {
			return err
		}

		var transactions []models.FeeTransaction
		if err := tx.Where("fee_id = ?", fee.ID).Find(&transactions).Error; err != nil {
			return err
		}

		paidToDate := models.SumTransactions(transactions)
		remaining = models.RemainingBalance(fee.TotalAmount, paidToDate)

		if req.Amount.GreaterThan(remaining) {
			overpayment = true
			return errors.New("payment of " + req.Amount.StringFixed(2) + " exceeds remaining balance of " + remaining.StringFixed(2))
		}

		ref := req.TransactionRef
		if ref == "" {
			generated, err := utils.GenerateReceiptNo(tx)
			if err != nil {
				return err
			}
			ref = generated
		}

		txn := models.FeeTransaction{
			FeeID:          fee.ID,
			Amount:         req.Amount,
			PaymentMode:    req.PaymentMode,
			TransactionRef: ref,
			PaymentDate:    paymentDate,
		}
		if req.Remarks != "" {
			txn.Remarks = &req.Remarks
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		fee.Status = models.DeriveFeeStatus(fee.TotalAmount, paidToDate.Add(req.Amount))
		return tx.Save(&fee).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee not found"})
		}
		if isDuplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "transaction_ref " + req.TransactionRef + " is already recorded"})
		}
		if overpayment {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":             err.Error(),
				"remaining_balance": remaining,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	database.DB.Preload("Transactions").First(&fee, "id = ?", fee.ID)
	paidToDate := models.SumTransactions(fee.Transactions)

	return c.JSON(fiber.Map{
		"fee":               fee,
		"paid_to_date":      paidToDate,
		"remaining_balance": models.RemainingBalance(fee.TotalAmount, paidToDate),
	})
}

func GetFee(c *fiber.Ctx) error {
	feeID := c.Params("feeId")

	var fee models.Fee
	if err := database.DB.Preload("Student").Preload("Transactions").First(&fee, "id = ?", feeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fee not found"})
	}

	paidToDate := models.SumTransactions(fee.Transactions)

	return c.JSON(fiber.Map{
		"fee":               fee,
		"paid_to_date":      paidToDate,
		"remaining_balance": models.RemainingBalance(fee.TotalAmount, paidToDate),
	})
}

func ListStudentFees(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var fees []models.Fee
	database.DB.Preload("Transactions").Where("student_id = ?", studentID).Order("due_date").Find(&fees)
	return c.JSON(fees)
}
