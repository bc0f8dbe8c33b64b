package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID            string        `json:"id" db:"id"`                                  // Unique identifier for the student record
	UserID        string        `json:"userId" db:"user_id"`                         // ID of the owning user account
	StudentID     string        `json:"studentId" db:"student_id" example:"STU1735"` // Generated student number, unique and immutable
	Name          string        `json:"name" db:"name" example:"Rahul Sharma"`
	Email         string        `json:"email" db:"email" example:"rahul@edumanage.com"`
	Phone         string        `json:"phone" db:"phone" example:"+91-9876543210"`
	DateOfBirth   string        `json:"dateOfBirth" db:"date_of_birth" example:"2004-06-15"` // Date-only, YYYY-MM-DD
	Address       string        `json:"address" db:"address"`
	Course        string        `json:"course" db:"course" example:"B.Tech Computer Science"`
	Year          int           `json:"year" db:"year" example:"2"`
	AdmissionDate string        `json:"admissionDate" db:"admission_date" example:"2023-08-01"` // Date-only, YYYY-MM-DD
	Status        StudentStatus `json:"status" db:"status" example:"active"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// StudentPatch carries a partial update for a student record. Nil fields are
// left untouched; StudentID and UserID are immutable and have no patch field.
type StudentPatch struct {
	Name          *string        `json:"name,omitempty"`
	Email         *string        `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string        `json:"phone,omitempty"`
	DateOfBirth   *string        `json:"dateOfBirth,omitempty"`
	Address       *string        `json:"address,omitempty"`
	Course        *string        `json:"course,omitempty"`
	Year          *int           `json:"year,omitempty"`
	AdmissionDate *string        `json:"admissionDate,omitempty"`
	Status        *StudentStatus `json:"status,omitempty"`
}
