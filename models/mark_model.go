package models

import (
	"time"

	"github.com/google/uuid"
)

type Mark struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ExamID        uuid.UUID `gorm:"not null;uniqueIndex:idx_mark_entry" json:"exam_id"`
	StudentID     uuid.UUID `gorm:"not null;uniqueIndex:idx_mark_entry" json:"student_id"`
	SubjectID     uuid.UUID `gorm:"not null;uniqueIndex:idx_mark_entry" json:"subject_id"`
	MarksObtained int       `gorm:"not null" json:"marks_obtained"`
	MaxMarks      int       `gorm:"not null" json:"max_marks"`

	Exam    Exam    `gorm:"foreignkey:ExamID" json:"exam,omitempty"`
	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Subject Subject `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
