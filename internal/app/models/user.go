package models

import (
	"time"
)

// User defines the account model based on the 'users' table
type User struct {
	ID        string    `json:"id" db:"id" example:"6f1c1bfa-0b0e-4f9e-9a93-1c7a9f2d5e11"` // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"admin"`                    // Login name, unique across all users
	Password  string    `json:"-" db:"password"`                                           // Hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"student"`                          // User's role (admin, staff or student)
	Email     string    `json:"email" db:"email" example:"admin@edumanage.com"`            // Email address, unique across all users
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`  // Timestamp when the account was created
}
