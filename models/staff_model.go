package models

import (
	"time"

	"github.com/google/uuid"
)

type Staff struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName     string     `gorm:"size:255;not null" json:"full_name"`
	Email        string     `gorm:"size:255;not null;unique" json:"email"`
	Phone        *string    `gorm:"size:20" json:"phone"`
	EmployeeNo   string     `gorm:"size:20;not null;unique" json:"employee_no"`
	DepartmentID uuid.UUID  `gorm:"not null" json:"department_id"`
	Designation  string     `gorm:"size:100;not null" json:"designation"`
	JoiningDate  *time.Time `json:"joining_date"`
	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`

	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff_members"
}
