package models

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StaffID  uuid.UUID `gorm:"not null" json:"staff_id"`
	FromDate time.Time `gorm:"type:date;not null" json:"from_date"`
	ToDate   time.Time `gorm:"type:date;not null" json:"to_date"`
	Reason   string    `gorm:"type:text;not null" json:"reason"`
	Status   string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	ReviewedByID *uuid.UUID `json:"reviewed_by_id"`
	ReviewNote   *string    `gorm:"type:text" json:"review_note"`

	Staff Staff `gorm:"foreignkey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
