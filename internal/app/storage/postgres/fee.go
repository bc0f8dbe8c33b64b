package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

const feeColumns = `id, student_id, amount, payment_date, payment_method,
	transaction_id, receipt_url, status, created_at`

func scanFee(row pgx.Row) (*models.Fee, error) {
	var fee models.Fee
	err := row.Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.PaymentDate,
		&fee.PaymentMethod,
		&fee.TransactionID,
		&fee.ReceiptURL,
		&fee.Status,
		&fee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, err
	}
	return &fee, nil
}

func scanFees(rows pgx.Rows) ([]*models.Fee, error) {
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fees, nil
}

// GetFees returns all fee records in insertion order.
func (s *Store) GetFees(ctx context.Context) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanFees(rows)
}

// GetFeesByStudentID returns the fee records of a student.
func (s *Store) GetFeesByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE student_id = $1 ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	return scanFees(rows)
}

// CreateFee inserts a new fee record with status completed unless the caller
// specifies otherwise. Negative amounts are rejected.
func (s *Store) CreateFee(ctx context.Context, fee *models.Fee) error {
	if fee.Amount < 0 {
		return apperrors.ErrNegativeAmount
	}
	if fee.Status == "" {
		fee.Status = models.FeeCompleted
	}

	fee.ID = newID()
	fee.CreatedAt = s.nowFunc()

	query := `
		INSERT INTO fees (id, student_id, amount, payment_date, payment_method,
			transaction_id, receipt_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Exec(ctx, query,
		fee.ID, fee.StudentID, fee.Amount, fee.PaymentDate, fee.PaymentMethod,
		fee.TransactionID, fee.ReceiptURL, fee.Status, fee.CreatedAt)
	return err
}

// UpdateFee merges the set fields of the patch into the stored record.
// Status changes follow the fee transition rules.
func (s *Store) UpdateFee(ctx context.Context, id string, patch models.FeePatch) (*models.Fee, error) {
	fee, err := s.getFee(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && !models.CanTransitionFee(fee.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if patch.Status != nil {
		fee.Status = *patch.Status
	}
	if patch.TransactionID != nil {
		fee.TransactionID = patch.TransactionID
	}
	if patch.ReceiptURL != nil {
		fee.ReceiptURL = patch.ReceiptURL
	}

	query := `
		UPDATE fees
		SET status = $2, transaction_id = $3, receipt_url = $4
		WHERE id = $1
	`

	if _, err := s.db.Exec(ctx, query, fee.ID, fee.Status, fee.TransactionID, fee.ReceiptURL); err != nil {
		return nil, err
	}
	return fee, nil
}

// TotalFeesCollected sums amounts over completed fee records.
func (s *Store) TotalFeesCollected(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM fees WHERE status = $1`
	if err := s.db.QueryRow(ctx, query, models.FeeCompleted).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) getFee(ctx context.Context, id string) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE id = $1`
	return scanFee(s.db.QueryRow(ctx, query, id))
}
