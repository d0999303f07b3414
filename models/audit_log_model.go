package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ActorID    string    `gorm:"size:40" json:"actor_id"`
	Role       string    `gorm:"size:20" json:"role"`
	Method     string    `gorm:"size:10;not null" json:"method"`
	Path       string    `gorm:"size:255;not null" json:"path"`
	StatusCode int       `gorm:"not null" json:"status_code"`

	CreatedAt time.Time `json:"created_at"`
}
