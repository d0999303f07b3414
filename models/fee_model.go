package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Fee struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID       `gorm:"not null" json:"student_id"`
	FeeType     string          `gorm:"size:50;not null" json:"fee_type"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	DueDate     time.Time       `gorm:"not null" json:"due_date"`
	Status      string          `gorm:"size:20;not null;default:'pending'" json:"status"`

	Student      Student          `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Transactions []FeeTransaction `gorm:"foreignkey:FeeID" json:"transactions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FeeTransaction struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FeeID          uuid.UUID       `gorm:"not null" json:"fee_id"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMode    string          `gorm:"size:20;not null" json:"payment_mode"`
	TransactionRef string          `gorm:"size:30;not null;unique" json:"transaction_ref"`
	PaymentDate    time.Time       `gorm:"not null" json:"payment_date"`
	Remarks        *string         `gorm:"type:text" json:"remarks"`

	CreatedAt time.Time `json:"created_at"`
}

// DeriveFeeStatus is the single source of truth for a fee's status. It is a
// pure function of the billed total and the amount paid to date; the overdue
// sweep job layers "overdue" on top for unpaid fees past their due date.
func DeriveFeeStatus(total, paid decimal.Decimal) string {
	switch {
	case paid.Sign() <= 0:
		return "pending"
	case paid.GreaterThanOrEqual(total):
		return "paid"
	default:
		return "partial"
	}
}

// SumTransactions totals recorded payments as exact decimals. Amounts are
// never summed through floats.
func SumTransactions(transactions []FeeTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// RemainingBalance is the amount still owed on a fee given payments to date.
func RemainingBalance(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}
