package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// CreateFacultyRequest represents the payload for creating a faculty profile
type CreateFacultyRequest struct {
	UserID        string `json:"userId" binding:"required"`
	EmployeeID    string `json:"employeeId" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Designation   string `json:"designation" binding:"required"`
	JoiningDate   string `json:"joiningDate" binding:"required,dateformat"`
	Qualification string `json:"qualification" binding:"omitempty"`
}

// CreateCourseRequest represents the payload for registering a course
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Department string `json:"department" binding:"required"`
	Semester   int    `json:"semester" binding:"required,min=1,max=12"`
	Credits    int    `json:"credits" binding:"required,min=1,max=10"`
}

// AttendanceMark is a single student's mark inside a batch submission
type AttendanceMark struct {
	StudentID string                  `json:"studentId" binding:"required"`
	Status    models.AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
}

// MarkAttendanceRequest represents a batch attendance submission for a course
type MarkAttendanceRequest struct {
	CourseID string           `json:"courseId" binding:"required"`
	Date     string           `json:"date" binding:"required,dateformat"`
	Marks    []AttendanceMark `json:"marks" binding:"required,min=1,dive"`
}
