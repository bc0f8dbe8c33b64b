package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
)

const bookColumns = `id, student_id, book_id, book_title, COALESCE(author, ''),
	issue_date, due_date, return_date, status, created_at`

func scanBook(row pgx.Row) (*models.LibraryBook, error) {
	var book models.LibraryBook
	err := row.Scan(
		&book.ID,
		&book.StudentID,
		&book.BookID,
		&book.BookTitle,
		&book.Author,
		&book.IssueDate,
		&book.DueDate,
		&book.ReturnDate,
		&book.Status,
		&book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func scanBooks(rows pgx.Rows) ([]*models.LibraryBook, error) {
	defer rows.Close()

	var books []*models.LibraryBook
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetLibraryBooks returns all loan records in insertion order.
func (s *Store) GetLibraryBooks(ctx context.Context) ([]*models.LibraryBook, error) {
	query := `SELECT ` + bookColumns + ` FROM library_books ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// GetLibraryBooksByStudentID returns the loan records of a student.
func (s *Store) GetLibraryBooksByStudentID(ctx context.Context, studentID string) ([]*models.LibraryBook, error) {
	query := `SELECT ` + bookColumns + ` FROM library_books WHERE student_id = $1 ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanBooks(rows)
}

// CreateLibraryBook inserts a new loan record with status issued unless the
// caller specifies otherwise.
func (s *Store) CreateLibraryBook(ctx context.Context, book *models.LibraryBook) error {
	if book.Status == "" {
		book.Status = models.BookIssued
	}
	if book.ReturnDate != nil && book.Status != models.BookReturned {
		return apperrors.ErrReturnDateWithoutReturn
	}

	book.ID = newID()
	book.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO library_books (id, student_id, book_id, book_title, author,
			issue_date, due_date, return_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		book.ID, book.StudentID, book.BookID, book.BookTitle, book.Author,
		book.IssueDate, book.DueDate, book.ReturnDate, book.Status, book.CreatedAt)
	return err
}

// UpdateLibraryBook merges the set fields of the patch into the stored
// record. Returned is terminal; a return date may only accompany the
// transition into it.
func (s *Store) UpdateLibraryBook(ctx context.Context, id string, patch models.LibraryBookPatch) (*models.LibraryBook, error) {
	query := `SELECT ` + bookColumns + ` FROM library_books WHERE id = $1`
	book, err := scanBook(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
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

	if patch.DueDate != nil {
		book.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		book.Status = *patch.Status
	}
	if patch.ReturnDate != nil {
		book.ReturnDate = patch.ReturnDate
	} else if patch.Status != nil && *patch.Status == models.BookReturned && book.ReturnDate == nil {
		today := helpers.FormatDate(s.nowFunc())
		book.ReturnDate = &today
	}

	updateQuery := `
		UPDATE library_books
		SET due_date = $2, return_date = $3, status = $4
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, updateQuery, book.ID, book.DueDate, book.ReturnDate, book.Status); err != nil {
		return nil, err
	}
	return book, nil
}

// BooksIssuedToday counts loan records whose issue date equals the current
// calendar date.
func (s *Store) BooksIssuedToday(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM library_books WHERE issue_date = $1`
	if err := s.db.QueryRow(ctx, query, helpers.FormatDate(s.nowFunc())).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
