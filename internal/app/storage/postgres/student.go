package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/dberrors"
)

const studentColumns = `id, COALESCE(user_id::text, ''), student_id, name, email,
	COALESCE(phone, ''), COALESCE(date_of_birth, ''), COALESCE(address, ''),
	course, year, admission_date, status, created_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.StudentID,
		&student.Name,
		&student.Email,
		&student.Phone,
		&student.DateOfBirth,
		&student.Address,
		&student.Course,
		&student.Year,
		&student.AdmissionDate,
		&student.Status,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func scanStudents(rows pgx.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent retrieves a student record by ID.
func (s *Store) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(s.db.QueryRow(ctx, query, id))
}

// GetStudentByUserID retrieves the student record owned by a user account.
func (s *Store) GetStudentByUserID(ctx context.Context, userID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`
	return scanStudent(s.db.QueryRow(ctx, query, userID))
}

// GetStudentByStudentID retrieves a student record by its student number.
func (s *Store) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`
	return scanStudent(s.db.QueryRow(ctx, query, studentID))
}

// GetStudents returns all student records in insertion order.
func (s *Store) GetStudents(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanStudents(rows)
}

// CreateStudent inserts a new student record with a generated student
// number. On a student number collision the suffix is bumped and the insert
// retried.
func (s *Store) CreateStudent(ctx context.Context, student *models.Student, userID string) error {
	student.ID = newID()
	student.UserID = userID
	student.CreatedAt = s.nowFunc()
	if student.Status == "" {
		student.Status = models.StudentActive
	}

	query := `
		INSERT INTO students (id, user_id, student_id, name, email, phone,
			date_of_birth, address, course, year, admission_date, status, created_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	suffix := s.nowFunc().UnixMilli()
	for attempt := 0; attempt < 5; attempt++ {
		student.StudentID = fmt.Sprintf("STU%d", suffix+int64(attempt))

		_, err := s.db.Exec(ctx, query,
			student.ID, student.UserID, student.StudentID, student.Name, student.Email,
			student.Phone, student.DateOfBirth, student.Address, student.Course,
			student.Year, student.AdmissionDate, student.Status, student.CreatedAt)
		if err == nil {
			return nil
		}
		if !dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return err
		}
	}
	return apperrors.ErrConflict
}

// UpdateStudent merges the set fields of the patch into the stored record.
// Status changes follow the student transition rules.
func (s *Store) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !models.CanTransitionStudent(student.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	applyStudentPatch(student, patch)

	query := `
		UPDATE students
		SET name = $2, email = $3, phone = $4, date_of_birth = $5, address = $6,
			course = $7, year = $8, admission_date = $9, status = $10
		WHERE id = $1
	`

	_, err = s.db.Exec(ctx, query,
		student.ID, student.Name, student.Email, student.Phone, student.DateOfBirth,
		student.Address, student.Course, student.Year, student.AdmissionDate, student.Status)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func applyStudentPatch(student *models.Student, patch models.StudentPatch) {
	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Email != nil {
		student.Email = *patch.Email
	}
	if patch.Phone != nil {
		student.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		student.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Address != nil {
		student.Address = *patch.Address
	}
	if patch.Course != nil {
		student.Course = *patch.Course
	}
	if patch.Year != nil {
		student.Year = *patch.Year
	}
	if patch.AdmissionDate != nil {
		student.AdmissionDate = *patch.AdmissionDate
	}
	if patch.Status != nil {
		student.Status = *patch.Status
	}
}
