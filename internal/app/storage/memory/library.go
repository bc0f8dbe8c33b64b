package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
)

// GetLibraryBooks returns all loan records in insertion order.
func (s *Store) GetLibraryBooks(ctx context.Context) ([]*models.LibraryBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*models.LibraryBook, 0, len(s.bookOrder))
	for _, id := range s.bookOrder {
		books = append(books, copyBook(s.books[id]))
	}
	return books, nil
}

// GetLibraryBooksByStudentID returns the loan records of a student.
func (s *Store) GetLibraryBooksByStudentID(ctx context.Context, studentID string) ([]*models.LibraryBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var books []*models.LibraryBook
	for _, id := range s.bookOrder {
		if s.books[id].StudentID == studentID {
			books = append(books, copyBook(s.books[id]))
		}
	}
	return books, nil
}

// CreateLibraryBook stores a new loan record with status issued unless the
// caller specifies otherwise. A return date on creation is only valid for
// records created directly in the returned state.
func (s *Store) CreateLibraryBook(ctx context.Context, book *models.LibraryBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if book.Status == "" {
		book.Status = models.BookIssued
	}
	if book.ReturnDate != nil && book.Status != models.BookReturned {
		return apperrors.ErrReturnDateWithoutReturn
	}

	book.ID = newID()
	book.CreatedAt = s.nowFunc()

	s.books[book.ID] = copyBook(book)
	s.bookOrder = append(s.bookOrder, book.ID)
	return nil
}

// UpdateLibraryBook merges the set fields of the patch into the stored
// record. Returned is terminal; a return date may only accompany the
// transition into it.
func (s *Store) UpdateLibraryBook(ctx context.Context, id string, patch models.LibraryBookPatch) (*models.LibraryBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}

	if patch.Status != nil && !models.CanTransitionBook(book.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	newStatus := book.Status
	if patch.Status != nil {
		newStatus = *patch.Status
	}
	if patch.ReturnDate != nil && newStatus != models.BookReturned {
		return nil, apperrors.ErrReturnDateWithoutReturn
	}

	updated := copyBook(book)
	if patch.DueDate != nil {
		updated.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.ReturnDate != nil {
		updated.ReturnDate = patch.ReturnDate
	} else if patch.Status != nil && *patch.Status == models.BookReturned && updated.ReturnDate == nil {
		today := helpers.FormatDate(s.nowFunc())
		updated.ReturnDate = &today
	}

	s.books[id] = updated
	return copyBook(updated), nil
}

// BooksIssuedToday counts loan records whose issue date equals the current
// calendar date. Date-only comparison, no time component.
func (s *Store) BooksIssuedToday(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := helpers.FormatDate(s.nowFunc())
	count := 0
	for _, id := range s.bookOrder {
		if s.books[id].IssueDate == today {
			count++
		}
	}
	return count, nil
}

func copyBook(b *models.LibraryBook) *models.LibraryBook {
	c := *b
	if b.ReturnDate != nil {
		rd := *b.ReturnDate
		c.ReturnDate = &rd
	}
	return &c
}
