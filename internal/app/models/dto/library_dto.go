package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// IssueBookRequest represents the payload for issuing a library book
type IssueBookRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	BookID    string `json:"bookId" binding:"required"`
	BookTitle string `json:"bookTitle" binding:"required"`
	Author    string `json:"author" binding:"omitempty"`
	IssueDate string `json:"issueDate" binding:"required,dateformat"`
	DueDate   string `json:"dueDate" binding:"required,dateformat"`
}

// UpdateBookRequest represents a partial loan record update
type UpdateBookRequest struct {
	DueDate    *string            `json:"dueDate,omitempty" binding:"omitempty,dateformat"`
	ReturnDate *string            `json:"returnDate,omitempty" binding:"omitempty,dateformat"`
	Status     *models.BookStatus `json:"status,omitempty" binding:"omitempty,oneof=issued returned overdue"`
}

// Patch converts the request into a storage patch.
func (r UpdateBookRequest) Patch() models.LibraryBookPatch {
	return models.LibraryBookPatch{
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
		Status:     r.Status,
	}
}
