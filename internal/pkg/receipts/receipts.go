package receipts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// Generator writes fee payment receipts to the local filesystem.
type Generator struct {
	basePath string
	baseURL  string
}

// NewGenerator creates a receipt generator rooted at basePath. baseURL, when
// set, is prepended to returned receipt paths.
func NewGenerator(basePath, baseURL string) (*Generator, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create receipts directory")
		return nil, fmt.Errorf("failed to create receipts directory %s: %w", basePath, err)
	}

	return &Generator{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Generate writes a receipt for a completed fee payment and returns the
// accessible path of the written file.
func (g *Generator) Generate(fee *models.Fee, student *models.Student) (string, error) {
	filename := fmt.Sprintf("receipt-%s.txt", fee.ID)
	dstPath := filepath.Join(g.basePath, filename)

	transactionID := "-"
	if fee.TransactionID != nil {
		transactionID = *fee.TransactionID
	}

	var b strings.Builder
	fmt.Fprintln(&b, "FEE PAYMENT RECEIPT")
	fmt.Fprintln(&b, "===================")
	fmt.Fprintf(&b, "Receipt No:    %s\n", fee.ID)
	fmt.Fprintf(&b, "Student:       %s (%s)\n", student.Name, student.StudentID)
	fmt.Fprintf(&b, "Course:        %s, Year %d\n", student.Course, student.Year)
	fmt.Fprintf(&b, "Amount:        %.2f\n", fee.Amount)
	fmt.Fprintf(&b, "Payment Date:  %s\n", fee.PaymentDate)
	fmt.Fprintf(&b, "Method:        %s\n", fee.PaymentMethod)
	fmt.Fprintf(&b, "Transaction:   %s\n", transactionID)
	fmt.Fprintf(&b, "Status:        %s\n", fee.Status)
	fmt.Fprintf(&b, "Issued At:     %s\n", time.Now().Format(time.RFC3339))

	if err := os.WriteFile(dstPath, []byte(b.String()), 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write receipt")
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	accessiblePath := filepath.Join("receipts", filename)
	if g.baseURL != "" {
		accessiblePath = strings.TrimRight(g.baseURL, "/") + "/" + filename
	}

	logger.Info().Str("fee_id", fee.ID).Str("path", accessiblePath).Msg("Receipt generated")
	return accessiblePath, nil
}
