package model

import (
	"time"

	"github.com/google/uuid"
)

// User backs the auth collaborator and review population. PasswordHash and
// Version are internal columns and must never be serialized or selected
// into review responses.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Version      int       `json:"-" db:"version"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
