package jobs

import (
	"log"
	"time"

	"github.com/anjiri1684/college_erp/database"
	"github.com/anjiri1684/college_erp/models"
)

// MarkOverdueFees flags unpaid fees past their due date. A later payment
// re-derives the status from the recorded sums; if the fee is still unpaid
// and past due after that, the next sweep flags it again.
func MarkOverdueFees() {
	log.Println("Running job: MarkOverdueFees...")

	result := database.DB.Model(&models.Fee{}).
		Where("status IN ? AND due_date < ?", []string{"pending", "partial"}, time.Now()).
		Update("status", "overdue")

	if result.Error != nil {
		log.Printf("Error marking overdue fees: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No fees to mark overdue.")
		return
	}

	log.Printf("Marked %d fee(s) as overdue.", result.RowsAffected)
}
