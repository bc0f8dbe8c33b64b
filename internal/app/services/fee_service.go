package services

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
	"github.com/mertkaya/edumanage/internal/pkg/receipts"
)

// FeeService handles fee payments, receipts and the fee summary
type FeeService struct {
	store    storage.Storage
	receipts *receipts.Generator
}

// NewFeeService creates a new fee service instance. The receipt generator is
// optional; without it payments are recorded without a receipt file.
func NewFeeService(store storage.Storage, receiptGen *receipts.Generator) *FeeService {
	return &FeeService{
		store:    store,
		receipts: receiptGen,
	}
}

// RecordPayment stores a fee payment for an existing student. Completed
// payments get a generated receipt.
func (s *FeeService) RecordPayment(ctx context.Context, req dto.CreateFeeRequest) (*models.Fee, error) {
	student, err := s.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	fee := &models.Fee{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        req.Status,
	}

	if err := s.store.CreateFee(ctx, fee); err != nil {
		return nil, err
	}

	if fee.Status == models.FeeCompleted && s.receipts != nil {
		receiptURL, err := s.receipts.Generate(fee, student)
		if err != nil {
			// The payment is already recorded, a receipt failure is not fatal.
			logger.Warn().Err(err).Str("fee_id", fee.ID).Msg("Receipt generation failed")
		} else {
			patch := models.FeePatch{ReceiptURL: &receiptURL}
			if fee, err = s.store.UpdateFee(ctx, fee.ID, patch); err != nil {
				return nil, err
			}
		}
	}

	logger.Info().Str("fee_id", fee.ID).Float64("amount", fee.Amount).Str("status", string(fee.Status)).Msg("Fee payment recorded")
	return fee, nil
}

// GetFees returns all fee records.
func (s *FeeService) GetFees(ctx context.Context) ([]*models.Fee, error) {
	return s.store.GetFees(ctx)
}

// GetFeesByStudent returns the fee records of a student.
func (s *FeeService) GetFeesByStudent(ctx context.Context, studentID string) ([]*models.Fee, error) {
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.store.GetFeesByStudentID(ctx, studentID)
}

// UpdateFee applies a partial update to a fee record. A transition into the
// completed state produces a receipt when a generator is configured.
func (s *FeeService) UpdateFee(ctx context.Context, id string, patch models.FeePatch) (*models.Fee, error) {
	fee, err := s.store.UpdateFee(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status == models.FeeCompleted && fee.ReceiptURL == nil && s.receipts != nil {
		student, err := s.store.GetStudent(ctx, fee.StudentID)
		if err == nil {
			if receiptURL, genErr := s.receipts.Generate(fee, student); genErr == nil {
				fee, err = s.store.UpdateFee(ctx, fee.ID, models.FeePatch{ReceiptURL: &receiptURL})
				if err != nil {
					return nil, err
				}
			}
		}
	}

	return fee, nil
}

// GetFeeSummary aggregates counts per status and the collected total.
func (s *FeeService) GetFeeSummary(ctx context.Context) (*dto.FeeSummaryResponse, error) {
	fees, err := s.store.GetFees(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.FeeSummaryResponse{}
	for _, fee := range fees {
		switch fee.Status {
		case models.FeeCompleted:
			summary.Paid++
			summary.TotalCollected += fee.Amount
		case models.FeePending:
			summary.Pending++
		}
	}
	return summary, nil
}

// TotalCollected sums amounts over completed fee records.
func (s *FeeService) TotalCollected(ctx context.Context) (float64, error) {
	return s.store.TotalFeesCollected(ctx)
}
