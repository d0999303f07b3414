package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName        string    `gorm:"size:255;not null" json:"full_name"`
	Email           string    `gorm:"size:255;not null;unique" json:"email"`
	Phone           *string   `gorm:"size:20" json:"phone"`
	AdmissionNo     string    `gorm:"size:20;not null;unique" json:"admission_no"`
	DepartmentID    uuid.UUID `gorm:"not null" json:"department_id"`
	Semester        int       `gorm:"not null;default:1" json:"semester"`
	YearOfAdmission int       `gorm:"not null" json:"year_of_admission"`
	Status          string    `gorm:"size:20;not null;default:'active'" json:"status"`

	GuardianName  *string `gorm:"size:255" json:"guardian_name"`
	GuardianPhone *string `gorm:"size:20" json:"guardian_phone"`
	Address       *string `gorm:"type:text" json:"address"`

	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
