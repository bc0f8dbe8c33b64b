package models

import (
	"time"
)

// LibraryBook defines a book loan record based on the 'library_books' table
type LibraryBook struct {
	ID         string     `json:"id" db:"id"`
	StudentID  string     `json:"studentId" db:"student_id"` // ID of the borrowing student record
	BookID     string     `json:"bookId" db:"book_id" example:"BK-10293"`
	BookTitle  string     `json:"bookTitle" db:"book_title" example:"Introduction to Algorithms"`
	Author     string     `json:"author" db:"author" example:"Cormen et al."`
	IssueDate  string     `json:"issueDate" db:"issue_date" example:"2024-09-01"` // Date-only, YYYY-MM-DD
	DueDate    string     `json:"dueDate" db:"due_date" example:"2024-09-15"`     // Date-only, YYYY-MM-DD
	ReturnDate *string    `json:"returnDate,omitempty" db:"return_date"`          // Set only when status becomes returned
	Status     BookStatus `json:"status" db:"status" example:"issued"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

// LibraryBookPatch carries a partial update for a loan record. ReturnDate may
// only be set together with a transition to the returned status.
type LibraryBookPatch struct {
	DueDate    *string     `json:"dueDate,omitempty"`
	ReturnDate *string     `json:"returnDate,omitempty"`
	Status     *BookStatus `json:"status,omitempty"`
}
