package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// CreateFeeRequest represents the payload for recording a fee payment
type CreateFeeRequest struct {
	StudentID     string           `json:"studentId" binding:"required"`
	Amount        float64          `json:"amount" binding:"required,min=0"`
	PaymentDate   string           `json:"paymentDate" binding:"required,dateformat"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
	TransactionID *string          `json:"transactionId,omitempty"`
	Status        models.FeeStatus `json:"status" binding:"omitempty,oneof=pending completed failed"`
}

// UpdateFeeRequest represents a partial fee update
type UpdateFeeRequest struct {
	Status        *models.FeeStatus `json:"status,omitempty" binding:"omitempty,oneof=pending completed failed"`
	TransactionID *string           `json:"transactionId,omitempty"`
}

// Patch converts the request into a storage patch.
func (r UpdateFeeRequest) Patch() models.FeePatch {
	return models.FeePatch{
		Status:        r.Status,
		TransactionID: r.TransactionID,
	}
}

// FeeSummaryResponse aggregates payment counts and the collected total
type FeeSummaryResponse struct {
	TotalCollected float64 `json:"totalCollected"`
	Paid           int     `json:"paid"`
	Pending        int     `json:"pending"`
}
