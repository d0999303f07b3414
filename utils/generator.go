package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/anjiri1684/college_erp/models"
	"gorm.io/gorm"
)

const serialDigits = 5
const digitBytes = "0123456789"

func randomSerial() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, serialDigits)
	for i := range b {
		b[i] = digitBytes[seededRand.Intn(len(digitBytes))]
	}
	return string(b)
}

// GenerateAdmissionNo mints an unused admission number inside the caller's
// transaction, e.g. ADM2026-48213.
func GenerateAdmissionNo(tx *gorm.DB) (string, error) {
	year := time.Now().Year()

	for {
		no := fmt.Sprintf("ADM%d-%s", year, randomSerial())

		var student models.Student
		err := tx.Where("admission_no = ?", no).First(&student).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return no, nil
			}
			return "", err
		}
	}
}

// GenerateEmployeeNo mints an unused staff employee number, e.g. EMP-48213.
func GenerateEmployeeNo(tx *gorm.DB) (string, error) {
	for {
		no := fmt.Sprintf("EMP-%s", randomSerial())

		var staff models.Staff
		err := tx.Where("employee_no = ?", no).First(&staff).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return no, nil
			}
			return "", err
		}
	}
}

// GenerateReceiptNo mints an unused fee transaction reference, used when the
// payer does not supply an external reference, e.g. RCPT-20260831-48213.
func GenerateReceiptNo(tx *gorm.DB) (string, error) {
	day := time.Now().Format("20060102")

	for {
		no := fmt.Sprintf("RCPT-%s-%s", day, randomSerial())

		var txn models.FeeTransaction
		err := tx.Where("transaction_ref = ?", no).First(&txn).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return no, nil
			}
			return "", err
		}
	}
}
