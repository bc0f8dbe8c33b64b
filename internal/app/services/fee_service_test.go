package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage/memory"
	"github.com/mertkaya/edumanage/internal/pkg/receipts"
)

func seedStudent(t *testing.T, store *memory.Store) *models.Student {
	t.Helper()
	student := &models.Student{
		Name:          "Rahul Sharma",
		Email:         "rahul@test.edu",
		Course:        "B.Tech Computer Science",
		Year:          2,
		AdmissionDate: "2023-08-01",
	}
	require.NoError(t, store.CreateStudent(context.Background(), student, ""))
	return student
}

func TestRecordPayment_GeneratesReceiptForCompleted(t *testing.T) {
	store := memory.New()
	student := seedStudent(t, store)

	dir := t.TempDir()
	gen, err := receipts.NewGenerator(dir, "http://localhost:8080/receipts")
	require.NoError(t, err)

	svc := NewFeeService(store, gen)
	fee, err := svc.RecordPayment(context.Background(), dto.CreateFeeRequest{
		StudentID:     student.ID,
		Amount:        45000,
		PaymentDate:   "2024-07-12",
		PaymentMethod: "upi",
		Status:        models.FeeCompleted,
	})
	require.NoError(t, err)

	require.NotNil(t, fee.ReceiptURL)
	assert.Equal(t, "http://localhost:8080/receipts/receipt-"+fee.ID+".txt", *fee.ReceiptURL)

	written, err := os.ReadFile(filepath.Join(dir, "receipt-"+fee.ID+".txt"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "Rahul Sharma")
	assert.Contains(t, string(written), "45000.00")
}

func TestRecordPayment_NoReceiptForPending(t *testing.T) {
	store := memory.New()
	student := seedStudent(t, store)

	gen, err := receipts.NewGenerator(t.TempDir(), "")
	require.NoError(t, err)

	svc := NewFeeService(store, gen)
	fee, err := svc.RecordPayment(context.Background(), dto.CreateFeeRequest{
		StudentID:     student.ID,
		Amount:        5000,
		PaymentDate:   "2024-07-12",
		PaymentMethod: "cash",
		Status:        models.FeePending,
	})
	require.NoError(t, err)
	assert.Nil(t, fee.ReceiptURL)
}

func TestRecordPayment_UnknownStudent(t *testing.T) {
	svc := NewFeeService(memory.New(), nil)
	_, err := svc.RecordPayment(context.Background(), dto.CreateFeeRequest{
		StudentID:     "missing",
		Amount:        100,
		PaymentDate:   "2024-07-12",
		PaymentMethod: "cash",
	})
	assert.Error(t, err)
}

func TestUpdateFee_CompletionBackfillsReceipt(t *testing.T) {
	store := memory.New()
	student := seedStudent(t, store)

	gen, err := receipts.NewGenerator(t.TempDir(), "")
	require.NoError(t, err)
	svc := NewFeeService(store, gen)

	fee, err := svc.RecordPayment(context.Background(), dto.CreateFeeRequest{
		StudentID:     student.ID,
		Amount:        5000,
		PaymentDate:   "2024-07-12",
		PaymentMethod: "cash",
		Status:        models.FeePending,
	})
	require.NoError(t, err)
	require.Nil(t, fee.ReceiptURL)

	completed := models.FeeCompleted
	fee, err = svc.UpdateFee(context.Background(), fee.ID, models.FeePatch{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.FeeCompleted, fee.Status)
	assert.NotNil(t, fee.ReceiptURL)
}

func TestGetFeeSummary(t *testing.T) {
	store := memory.New()
	student := seedStudent(t, store)
	svc := NewFeeService(store, nil)
	ctx := context.Background()

	for _, p := range []struct {
		amount float64
		status models.FeeStatus
	}{
		{20000, models.FeeCompleted},
		{25000, models.FeeCompleted},
		{5000, models.FeePending},
		{1000, models.FeeFailed},
	} {
		_, err := svc.RecordPayment(ctx, dto.CreateFeeRequest{
			StudentID:     student.ID,
			Amount:        p.amount,
			PaymentDate:   "2024-07-12",
			PaymentMethod: "upi",
			Status:        p.status,
		})
		require.NoError(t, err)
	}

	summary, err := svc.GetFeeSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, summary.TotalCollected)
	assert.Equal(t, 2, summary.Paid)
	assert.Equal(t, 1, summary.Pending)

	total, err := svc.TotalCollected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, total)
}
