package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

const examColumns = `id, student_id, subject, marks, total_marks,
	COALESCE(grade, ''), exam_date, exam_type, created_at`

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	err := row.Scan(
		&exam.ID,
		&exam.StudentID,
		&exam.Subject,
		&exam.Marks,
		&exam.TotalMarks,
		&exam.Grade,
		&exam.ExamDate,
		&exam.ExamType,
		&exam.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, err
	}
	return &exam, nil
}

func scanExams(rows pgx.Rows) ([]*models.Exam, error) {
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetExams returns all exam records in insertion order.
func (s *Store) GetExams(ctx context.Context) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanExams(rows)
}

// GetExamsByStudentID returns the exam records of a student.
func (s *Store) GetExamsByStudentID(ctx context.Context, studentID string) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE student_id = $1 ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanExams(rows)
}

// CreateExam inserts a new exam record. Total marks default to 100 and marks
// must lie within [0, totalMarks].
func (s *Store) CreateExam(ctx context.Context, exam *models.Exam) error {
	if exam.TotalMarks == 0 {
		exam.TotalMarks = 100
	}
	if exam.TotalMarks < 0 || exam.Marks < 0 || exam.Marks > exam.TotalMarks {
		return apperrors.ErrMarksOutOfRange
	}

	exam.ID = newID()
	exam.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO exams (id, student_id, subject, marks, total_marks, grade,
			exam_date, exam_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		exam.ID, exam.StudentID, exam.Subject, exam.Marks, exam.TotalMarks,
		exam.Grade, exam.ExamDate, exam.ExamType, exam.CreatedAt)
	return err
}

// AverageExamPerformance groups exam records by subject and averages
// marks/totalMarks*100 within each group, ordered by first appearance.
func (s *Store) AverageExamPerformance(ctx context.Context) ([]models.SubjectAverage, error) {
	query := `
		SELECT subject, AVG(marks::float8 / total_marks * 100)
		FROM exams
		GROUP BY subject
		ORDER BY MIN(created_at)
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make([]models.SubjectAverage, 0)
	for rows.Next() {
		var avg models.SubjectAverage
		if err := rows.Scan(&avg.Subject, &avg.Average); err != nil {
			return nil, err
		}
		averages = append(averages, avg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return averages, nil
}
