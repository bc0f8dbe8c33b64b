package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/dberrors"
)

const hostelColumns = `id, student_id, room_no, block, allocation_date, status, created_at`

func scanHostel(row pgx.Row) (*models.Hostel, error) {
	var hostel models.Hostel
	err := row.Scan(
		&hostel.ID,
		&hostel.StudentID,
		&hostel.RoomNo,
		&hostel.Block,
		&hostel.AllocationDate,
		&hostel.Status,
		&hostel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, err
	}
	return &hostel, nil
}

// GetHostels returns all hostel allocations in insertion order.
func (s *Store) GetHostels(ctx context.Context) ([]*models.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, hostel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return hostels, nil
}

// GetHostelByStudentID returns the student's hostel record, preferring an
// active allocation over vacated history.
func (s *Store) GetHostelByStudentID(ctx context.Context, studentID string) (*models.Hostel, error) {
	query := `
		SELECT ` + hostelColumns + `
		FROM hostels
		WHERE student_id = $1
		ORDER BY (status = 'allocated') DESC, created_at DESC
		LIMIT 1
	`
	return scanHostel(s.db.QueryRow(ctx, query, studentID))
}

// CreateHostel inserts a new allocation. A partial unique index rejects a
// second active allocation for the same student.
func (s *Store) CreateHostel(ctx context.Context, hostel *models.Hostel) error {
	if hostel.Status == "" {
		hostel.Status = models.HostelAllocated
	}

	hostel.ID = newID()
	hostel.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO hostels (id, student_id, room_no, block, allocation_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		hostel.ID, hostel.StudentID, hostel.RoomNo, hostel.Block,
		hostel.AllocationDate, hostel.Status, hostel.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "idx_hostels_active_allocation") {
			return apperrors.ErrHostelAlreadyAllocated
		}
		return err
	}
	return nil
}

// UpdateHostel merges the set fields of the patch into the stored record.
// Status changes follow the hostel transition rules.
func (s *Store) UpdateHostel(ctx context.Context, id string, patch models.HostelPatch) (*models.Hostel, error) {
	query := `SELECT ` + hostelColumns + ` FROM hostels WHERE id = $1`
	hostel, err := scanHostel(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !models.CanTransitionHostel(hostel.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if patch.RoomNo != nil {
		hostel.RoomNo = *patch.RoomNo
	}
	if patch.Block != nil {
		hostel.Block = *patch.Block
	}
	if patch.Status != nil {
		hostel.Status = *patch.Status
	}

	updateQuery := `
		UPDATE hostels
		SET room_no = $2, block = $3, status = $4
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, updateQuery, hostel.ID, hostel.RoomNo, hostel.Block, hostel.Status); err != nil {
		return nil, err
	}
	return hostel, nil
}

// HostelOccupancy reports the configured capacity and the active allocation
// count.
func (s *Store) HostelOccupancy(ctx context.Context) (models.HostelOccupancy, error) {
	var occupied int
	query := `SELECT COUNT(*) FROM hostels WHERE status = $1`
	if err := s.db.QueryRow(ctx, query, models.HostelAllocated).Scan(&occupied); err != nil {
		return models.HostelOccupancy{}, err
	}

	return models.HostelOccupancy{
		Total:    s.hostelCapacity,
		Occupied: occupied,
	}, nil
}
