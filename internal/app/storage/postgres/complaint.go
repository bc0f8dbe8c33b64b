package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

const complaintColumns = `id, student_id, title, description, status,
	resolved_by::text, resolved_at, created_at`

func scanComplaint(row pgx.Row) (*models.HostelComplaint, error) {
	var complaint models.HostelComplaint
	err := row.Scan(
		&complaint.ID,
		&complaint.StudentID,
		&complaint.Title,
		&complaint.Description,
		&complaint.Status,
		&complaint.ResolvedBy,
		&complaint.ResolvedAt,
		&complaint.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

func scanComplaints(rows pgx.Rows) ([]*models.HostelComplaint, error) {
	defer rows.Close()

	var complaints []*models.HostelComplaint
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return complaints, nil
}

// CreateComplaint inserts a new hostel complaint with status pending.
func (s *Store) CreateComplaint(ctx context.Context, complaint *models.HostelComplaint) error {
	if complaint.Status == "" {
		complaint.Status = models.ComplaintPending
	}

	complaint.ID = newID()
	complaint.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO hostel_complaints (id, student_id, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		complaint.ID, complaint.StudentID, complaint.Title,
		complaint.Description, complaint.Status, complaint.CreatedAt)
	return err
}

// GetComplaints returns all hostel complaints in insertion order.
func (s *Store) GetComplaints(ctx context.Context) ([]*models.HostelComplaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM hostel_complaints ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanComplaints(rows)
}

// GetComplaintsByStudentID returns the complaints filed by a student.
func (s *Store) GetComplaintsByStudentID(ctx context.Context, studentID string) ([]*models.HostelComplaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM hostel_complaints WHERE student_id = $1 ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanComplaints(rows)
}

// ResolveComplaint advances a complaint's status, recording resolution
// metadata when it reaches the resolved state.
func (s *Store) ResolveComplaint(ctx context.Context, id string, status models.ComplaintStatus, resolvedBy string) (*models.HostelComplaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM hostel_complaints WHERE id = $1`
	complaint, err := scanComplaint(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionComplaint(complaint.Status, status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	complaint.Status = status
	if status == models.ComplaintResolved {
		now := s.nowFunc()
		complaint.ResolvedAt = &now
		complaint.ResolvedBy = &resolvedBy
	}

	updateQuery := `
		UPDATE hostel_complaints
		SET status = $2, resolved_by = NULLIF($3, '')::uuid, resolved_at = $4
		WHERE id = $1
	`

	resolvedByValue := ""
	if complaint.ResolvedBy != nil {
		resolvedByValue = *complaint.ResolvedBy
	}

	if _, err := s.db.Exec(ctx, updateQuery, complaint.ID, complaint.Status, resolvedByValue, complaint.ResolvedAt); err != nil {
		return nil, err
	}
	return complaint, nil
}
