package models

import (
	"time"

	"github.com/google/uuid"
)

// TimetableSlot is never updated in place: edits are modeled as
// delete + recreate so every slot passes through the conflict check.
type TimetableSlot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DepartmentID uuid.UUID `gorm:"not null" json:"department_id"`
	SubjectID    uuid.UUID `gorm:"not null" json:"subject_id"`
	StaffID      uuid.UUID `gorm:"not null" json:"staff_id"`
	Semester     int       `gorm:"not null" json:"semester"`
	DayOfWeek    string    `gorm:"size:10;not null" json:"day_of_week"`
	StartTime    string    `gorm:"size:5;not null" json:"start_time"`
	EndTime      string    `gorm:"size:5;not null" json:"end_time"`
	RoomNumber   string    `gorm:"size:20;not null" json:"room_number"`

	Department Department `gorm:"foreignkey:DepartmentID" json:"department,omitempty"`
	Subject    Subject    `gorm:"foreignkey:SubjectID" json:"subject,omitempty"`
	Staff      Staff      `gorm:"foreignkey:StaffID" json:"staff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ClockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Times are validated with this at the request boundary before
// any slot math runs.
func ClockMinutes(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// OverlapsWith reports whether two slots collide. Slot windows are half-open
// [start, end), so back-to-back slots sharing a boundary do not overlap. The
// check is scoped to one staff member on one weekday; anything else is never
// a conflict.
func (s TimetableSlot) OverlapsWith(other TimetableSlot) bool {
	if s.StaffID != other.StaffID || s.DayOfWeek != other.DayOfWeek {
		return false
	}
	sStart, err := ClockMinutes(s.StartTime)
	if err != nil {
		return false
	}
	sEnd, err := ClockMinutes(s.EndTime)
	if err != nil {
		return false
	}
	oStart, err := ClockMinutes(other.StartTime)
	if err != nil {
		return false
	}
	oEnd, err := ClockMinutes(other.EndTime)
	if err != nil {
		return false
	}
	return sStart < oEnd && oStart < sEnd
}

// FindConflictingSlot returns the first existing slot the candidate
// collides with, or nil when the candidate is safe to persist.
func FindConflictingSlot(existing []TimetableSlot, candidate TimetableSlot) *TimetableSlot {
	for i := range existing {
		if candidate.OverlapsWith(existing[i]) {
			return &existing[i]
		}
	}
	return nil
}
