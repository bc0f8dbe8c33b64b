package models

import (
	"time"
)

// Fee defines a fee payment record based on the 'fees' table
type Fee struct {
	ID            string    `json:"id" db:"id"`
	StudentID     string    `json:"studentId" db:"student_id"`                          // ID of the owning student record
	Amount        float64   `json:"amount" db:"amount" example:"45000"`                 // Non-negative payment amount
	PaymentDate   string    `json:"paymentDate" db:"payment_date" example:"2024-07-12"` // Date-only, YYYY-MM-DD
	PaymentMethod string    `json:"paymentMethod" db:"payment_method" example:"upi"`    // cash, card, upi, bank_transfer
	TransactionID *string   `json:"transactionId,omitempty" db:"transaction_id"`
	ReceiptURL    *string   `json:"receiptUrl,omitempty" db:"receipt_url"`
	Status        FeeStatus `json:"status" db:"status" example:"completed"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// FeePatch carries a partial update for a fee record. Status changes follow
// the one-way transition rules (a completed fee cannot be un-completed).
type FeePatch struct {
	Status        *FeeStatus `json:"status,omitempty"`
	TransactionID *string    `json:"transactionId,omitempty"`
	ReceiptURL    *string    `json:"receiptUrl,omitempty"`
}

// FeeSummary aggregates fee records for the management dashboard
type FeeSummary struct {
	Paid           int     `json:"paid" example:"42"`               // Count of completed fee records
	Pending        int     `json:"pending" example:"7"`             // Count of pending fee records
	TotalCollected float64 `json:"totalCollected" example:"812500"` // Sum of amounts over completed records
}
