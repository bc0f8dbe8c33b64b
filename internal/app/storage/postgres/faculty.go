package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/dberrors"
)

const facultyColumns = `id, user_id, employee_id, department, designation,
	joining_date, COALESCE(qualification, ''), created_at`

const courseColumns = `id, name, code, department, semester, credits,
	COALESCE(faculty_id::text, ''), created_at`

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var faculty models.Faculty
	err := row.Scan(
		&faculty.ID,
		&faculty.UserID,
		&faculty.EmployeeID,
		&faculty.Department,
		&faculty.Designation,
		&faculty.JoiningDate,
		&faculty.Qualification,
		&faculty.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, err
	}
	return &faculty, nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Department,
		&course.Semester,
		&course.Credits,
		&course.FacultyID,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// GetFacultyByUserID retrieves the faculty profile owned by a user account.
func (s *Store) GetFacultyByUserID(ctx context.Context, userID string) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty WHERE user_id = $1`
	return scanFaculty(s.db.QueryRow(ctx, query, userID))
}

// GetFaculties returns all faculty profiles in insertion order.
func (s *Store) GetFaculties(ctx context.Context) ([]*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return faculties, nil
}

// CreateFaculty inserts a new faculty profile. Employee IDs are unique.
func (s *Store) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	faculty.ID = newID()
	faculty.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO faculty (id, user_id, employee_id, department, designation,
			joining_date, qualification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		faculty.ID, faculty.UserID, faculty.EmployeeID, faculty.Department,
		faculty.Designation, faculty.JoiningDate, faculty.Qualification, faculty.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_employee_id_key") {
			return apperrors.ErrEmployeeIDAlreadyExists
		}
		return err
	}
	return nil
}

// GetCoursesByFacultyID returns the courses taught by a faculty member.
func (s *Store) GetCoursesByFacultyID(ctx context.Context, facultyID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE faculty_id = $1 ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse inserts a new course. Course codes are unique.
func (s *Store) CreateCourse(ctx context.Context, course *models.Course) error {
	course.ID = newID()
	course.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO courses (id, name, code, department, semester, credits, faculty_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8)
	`

	_, err := s.db.Exec(ctx, query,
		course.ID, course.Name, course.Code, course.Department,
		course.Semester, course.Credits, course.FacultyID, course.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		return err
	}
	return nil
}

// CreateAttendance records a batch of attendance marks inside a single
// transaction: either every record is stored or none.
func (s *Store) CreateAttendance(ctx context.Context, records []*models.Attendance) error {
	for _, record := range records {
		if record.Status == "" {
			return apperrors.ErrInvalidStatus
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO attendance (id, student_id, course_id, date, status, marked_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := s.nowFunc()
	for _, record := range records {
		record.ID = newID()
		record.CreatedAt = now

		if _, err := tx.Exec(ctx, query,
			record.ID, record.StudentID, record.CourseID, record.Date,
			record.Status, record.MarkedBy, record.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetAttendanceReport returns attendance marks for a course within an
// inclusive date range.
func (s *Store) GetAttendanceReport(ctx context.Context, courseID, from, to string) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, course_id, date, status, marked_by, created_at
		FROM attendance
		WHERE course_id = $1
			AND ($2 = '' OR date >= $2)
			AND ($3 = '' OR date <= $3)
		ORDER BY created_at, id
	`

	rows, err := s.db.Query(ctx, query, courseID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*models.Attendance
	for rows.Next() {
		var record models.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.CourseID,
			&record.Date,
			&record.Status,
			&record.MarkedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		report = append(report, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return report, nil
}
