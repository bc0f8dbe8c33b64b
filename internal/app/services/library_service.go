package services

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// LibraryService handles book loan records
type LibraryService struct {
	store storage.Storage
}

// NewLibraryService creates a new library service instance
func NewLibraryService(store storage.Storage) *LibraryService {
	return &LibraryService{
		store: store,
	}
}

// IssueBook records a book loan for an existing student.
func (s *LibraryService) IssueBook(ctx context.Context, req dto.IssueBookRequest) (*models.LibraryBook, error) {
	if _, err := s.store.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	book := &models.LibraryBook{
		StudentID: req.StudentID,
		BookID:    req.BookID,
		BookTitle: req.BookTitle,
		Author:    req.Author,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
	}

	if err := s.store.CreateLibraryBook(ctx, book); err != nil {
		return nil, err
	}

	logger.Info().Str("book_id", book.BookID).Str("student_id", book.StudentID).Msg("Book issued")
	return book, nil
}

// GetBooks returns all loan records.
func (s *LibraryService) GetBooks(ctx context.Context) ([]*models.LibraryBook, error) {
	return s.store.GetLibraryBooks(ctx)
}

// GetBooksByStudent returns the loan records of a student.
func (s *LibraryService) GetBooksByStudent(ctx context.Context, studentID string) ([]*models.LibraryBook, error) {
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.store.GetLibraryBooksByStudentID(ctx, studentID)
}

// UpdateBook applies a partial update to a loan record, typically a return
// or an overdue marking.
func (s *LibraryService) UpdateBook(ctx context.Context, id string, patch models.LibraryBookPatch) (*models.LibraryBook, error) {
	return s.store.UpdateLibraryBook(ctx, id, patch)
}

// BooksIssuedToday counts loans issued on the current calendar date.
func (s *LibraryService) BooksIssuedToday(ctx context.Context) (int, error) {
	return s.store.BooksIssuedToday(ctx)
}
