package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// CreateExamRequest represents the payload for recording an exam result
type CreateExamRequest struct {
	StudentID  string          `json:"studentId" binding:"required"`
	Subject    string          `json:"subject" binding:"required"`
	Marks      int             `json:"marks" binding:"min=0"`
	TotalMarks int             `json:"totalMarks" binding:"omitempty,min=1"`
	Grade      string          `json:"grade" binding:"omitempty"`
	ExamDate   string          `json:"examDate" binding:"required,dateformat"`
	ExamType   models.ExamType `json:"examType" binding:"required,oneof=midterm final quiz assignment"`
}
