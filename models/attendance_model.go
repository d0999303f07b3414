package models

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_attendance_entry" json:"student_id"`
	SubjectID uuid.UUID `gorm:"not null;uniqueIndex:idx_attendance_entry" json:"subject_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_entry" json:"date"`
	Status    string    `gorm:"size:10;not null" json:"status"`

	MarkedByID *uuid.UUID `json:"marked_by_id"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Subject Subject `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
