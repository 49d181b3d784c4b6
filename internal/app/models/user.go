package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Jane Doe"`
	Email     string    `json:"email" db:"email" example:"jane@school.edu"`
	Password  string    `json:"-" db:"password"` // Hashed password, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"teacher"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
