package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact message status values
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ContactMessage is an inbound message from the public contact form.
// Immutable after creation except for the status field.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	IPAddress string    `json:"ipAddress" db:"ip_address" gorm:"type:text"`
	Status    string    `json:"status" db:"status" gorm:"type:text;default:new"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ValidContactStatus reports whether s is one of the recognized status values
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}
