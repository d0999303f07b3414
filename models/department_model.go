package models

import (
	"time"

	"github.com/google/uuid"
)

// Departments are maintained by the registry service; rows are referenced
// here but never created through this API.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"size:255;not null;unique" json:"name"`
	Code string    `gorm:"size:10;not null;unique" json:"code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
