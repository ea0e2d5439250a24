package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin credential. The system expects exactly one, seeded at startup.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Role         string    `json:"role" db:"role" gorm:"type:text;default:admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
