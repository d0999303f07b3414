package models

import (
	"time"

	"github.com/google/uuid"
)

type Subject struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DepartmentID uuid.UUID `gorm:"not null" json:"department_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Code         string    `gorm:"size:20;not null;unique" json:"code"`
	Semester     int       `gorm:"not null" json:"semester"`
	Credits      int       `gorm:"not null;default:0" json:"credits"`

	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
