package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage/memory"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
)

func TestGetStats(t *testing.T) {
	store := memory.New(memory.WithHostelCapacity(50))
	svc := NewDashboardService(store, nil)
	ctx := context.Background()

	active := &models.Student{Name: "Rahul", Email: "rahul@test.edu", Course: "CS", Year: 2, AdmissionDate: "2023-08-01"}
	require.NoError(t, store.CreateStudent(ctx, active, ""))
	graduated := &models.Student{Name: "Priya", Email: "priya@test.edu", Course: "CS", Year: 4, AdmissionDate: "2021-08-01"}
	require.NoError(t, store.CreateStudent(ctx, graduated, ""))

	inactive := models.StudentInactive
	_, err := store.UpdateStudent(ctx, graduated.ID, models.StudentPatch{Status: &inactive})
	require.NoError(t, err)

	require.NoError(t, store.CreateFee(ctx, &models.Fee{
		StudentID: active.ID, Amount: 45000, PaymentDate: "2024-07-12", PaymentMethod: "upi", Status: models.FeeCompleted,
	}))
	require.NoError(t, store.CreateFee(ctx, &models.Fee{
		StudentID: active.ID, Amount: 5000, PaymentDate: "2024-07-12", PaymentMethod: "cash", Status: models.FeePending,
	}))

	require.NoError(t, store.CreateHostel(ctx, &models.Hostel{
		StudentID: active.ID, RoomNo: "B-204", Block: "B", AllocationDate: "2024-08-01",
	}))

	require.NoError(t, store.CreateLibraryBook(ctx, &models.LibraryBook{
		StudentID: active.ID, BookTitle: "Clean Code", IssueDate: helpers.Today(), DueDate: "2099-01-01",
	}))

	require.NoError(t, store.CreateExam(ctx, &models.Exam{
		StudentID: active.ID, Subject: "Mathematics", ExamType: "midterm", Marks: 85, TotalMarks: 100, ExamDate: "2025-02-10",
	}))

	require.NoError(t, store.CreateComplaint(ctx, &models.HostelComplaint{
		StudentID: active.ID, Title: "Leaking tap", Description: "Room B-204",
	}))

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, &dto.DashboardResponse{
		TotalStudents:     2,
		ActiveStudents:    1,
		TotalFees:         45000,
		HostelOccupancy:   models.HostelOccupancy{Total: 50, Occupied: 1},
		BooksIssuedToday:  1,
		ExamPerformance:   []models.SubjectAverage{{Subject: "Mathematics", Average: 85}},
		PendingComplaints: 1,
	}, stats)
}
