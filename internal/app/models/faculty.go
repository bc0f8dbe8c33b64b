package models

import (
	"time"
)

// Faculty defines a faculty member profile based on the 'faculty' table
type Faculty struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`                            // ID of the owning user account
	EmployeeID    string    `json:"employeeId" db:"employee_id" example:"EMP-0042"` // Unique employee number
	Department    string    `json:"department" db:"department" example:"Computer Science"`
	Designation   string    `json:"designation" db:"designation" example:"Assistant Professor"`
	JoiningDate   string    `json:"joiningDate" db:"joining_date" example:"2019-07-01"` // Date-only, YYYY-MM-DD
	Qualification string    `json:"qualification" db:"qualification" example:"PhD"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Course defines a course taught by a faculty member
type Course struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name" example:"Data Structures"`
	Code       string    `json:"code" db:"code" example:"CS201"` // Unique course code
	Department string    `json:"department" db:"department"`
	Semester   int       `json:"semester" db:"semester" example:"3"`
	Credits    int       `json:"credits" db:"credits" example:"4"`
	FacultyID  string    `json:"facultyId" db:"faculty_id"` // ID of the teaching faculty record
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Attendance defines a per-student, per-course attendance mark
type Attendance struct {
	ID        string           `json:"id" db:"id"`
	StudentID string           `json:"studentId" db:"student_id"`
	CourseID  string           `json:"courseId" db:"course_id"`
	Date      string           `json:"date" db:"date" example:"2024-10-03"` // Date-only, YYYY-MM-DD
	Status    AttendanceStatus `json:"status" db:"status" example:"present"`
	MarkedBy  string           `json:"markedBy" db:"marked_by"` // Faculty record ID of the marker
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
