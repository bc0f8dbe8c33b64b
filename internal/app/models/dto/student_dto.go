package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// CreateStudentRequest represents the payload for enrolling a student
type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"omitempty"`
	DateOfBirth   string `json:"dateOfBirth" binding:"omitempty,dateformat"`
	Address       string `json:"address" binding:"omitempty"`
	Course        string `json:"course" binding:"required"`
	Year          int    `json:"year" binding:"required,min=1,max=6"`
	AdmissionDate string `json:"admissionDate" binding:"required,dateformat"`
}

// UpdateStudentRequest represents a partial student update. Absent fields
// keep their stored values.
type UpdateStudentRequest struct {
	Name          *string               `json:"name,omitempty"`
	Email         *string               `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string               `json:"phone,omitempty"`
	DateOfBirth   *string               `json:"dateOfBirth,omitempty" binding:"omitempty,dateformat"`
	Address       *string               `json:"address,omitempty"`
	Course        *string               `json:"course,omitempty"`
	Year          *int                  `json:"year,omitempty" binding:"omitempty,min=1,max=6"`
	AdmissionDate *string               `json:"admissionDate,omitempty" binding:"omitempty,dateformat"`
	Status        *models.StudentStatus `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated"`
}

// Patch converts the request into a storage patch.
func (r UpdateStudentRequest) Patch() models.StudentPatch {
	return models.StudentPatch{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		DateOfBirth:   r.DateOfBirth,
		Address:       r.Address,
		Course:        r.Course,
		Year:          r.Year,
		AdmissionDate: r.AdmissionDate,
		Status:        r.Status,
	}
}
