package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetFees returns all fee records in insertion order.
func (s *Store) GetFees(ctx context.Context) ([]*models.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fees := make([]*models.Fee, 0, len(s.feeOrder))
	for _, id := range s.feeOrder {
		fees = append(fees, copyFee(s.fees[id]))
	}
	return fees, nil
}

// GetFeesByStudentID returns the fee records belonging to a student.
func (s *Store) GetFeesByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var fees []*models.Fee
	for _, id := range s.feeOrder {
		if s.fees[id].StudentID == studentID {
			fees = append(fees, copyFee(s.fees[id]))
		}
	}
	return fees, nil
}

// CreateFee stores a new fee record. The status defaults to completed; a
// negative amount is rejected before any state changes.
func (s *Store) CreateFee(ctx context.Context, fee *models.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fee.Amount < 0 {
		return apperrors.ErrNegativeAmount
	}
	if fee.Status == "" {
		fee.Status = models.FeeCompleted
	}

	fee.ID = newID()
	fee.CreatedAt = s.nowFunc()

	s.fees[fee.ID] = copyFee(fee)
	s.feeOrder = append(s.feeOrder, fee.ID)
	return nil
}

// UpdateFee merges the set fields of the patch into the stored record.
// Status changes are one-way: a completed or failed fee is terminal.
func (s *Store) UpdateFee(ctx context.Context, id string, patch models.FeePatch) (*models.Fee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fee, ok := s.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}

	if patch.Status != nil && !models.CanTransitionFee(fee.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated := copyFee(fee)
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.TransactionID != nil {
		updated.TransactionID = patch.TransactionID
	}
	if patch.ReceiptURL != nil {
		updated.ReceiptURL = patch.ReceiptURL
	}

	s.fees[id] = updated
	return copyFee(updated), nil
}

// TotalFeesCollected sums amounts over fee records with status completed.
func (s *Store) TotalFeesCollected(ctx context.Context) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, id := range s.feeOrder {
		if s.fees[id].Status == models.FeeCompleted {
			total += s.fees[id].Amount
		}
	}
	return total, nil
}

func copyFee(f *models.Fee) *models.Fee {
	c := *f
	if f.TransactionID != nil {
		tid := *f.TransactionID
		c.TransactionID = &tid
	}
	if f.ReceiptURL != nil {
		url := *f.ReceiptURL
		c.ReceiptURL = &url
	}
	return &c
}
