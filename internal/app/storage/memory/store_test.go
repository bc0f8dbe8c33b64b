package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
)

func newTestStudent(t *testing.T, s *Store) *models.Student {
	t.Helper()
	student := &models.Student{
		Name:          "Rahul Sharma",
		Email:         "rahul@test.edu",
		Phone:         "+91-9876543210",
		DateOfBirth:   "2004-06-15",
		Address:       "12 MG Road",
		Course:        "B.Tech Computer Science",
		Year:          2,
		AdmissionDate: "2023-08-01",
	}
	require.NoError(t, s.CreateStudent(context.Background(), student, "user-1"))
	return student
}

func TestCreateUser_Defaults(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &models.User{Username: "rahul", Password: "hash", Email: "rahul@test.edu"}
	require.NoError(t, s.CreateUser(ctx, user))

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := s.GetUserByUsername(ctx, "rahul")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = s.GetUserByEmail(ctx, "rahul@test.edu")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCreateUser_UniquenessEnforced(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &models.User{Username: "rahul", Password: "hash", Email: "rahul@test.edu"}))

	err := s.CreateUser(ctx, &models.User{Username: "rahul", Password: "hash", Email: "other@test.edu"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	err = s.CreateUser(ctx, &models.User{Username: "other", Password: "hash", Email: "rahul@test.edu"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	s := New()
	err := s.CreateUser(context.Background(), &models.User{Username: "x", Password: "hash", Email: "x@test.edu", Role: "superuser"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestCreateStudent_StudentNumbersUniqueUnderRapidCreation(t *testing.T) {
	// Frozen clock: every creation happens in the same millisecond.
	frozen := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return frozen }))
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		student := &models.Student{Name: "S", Email: "s@test.edu", Course: "CS", Year: 1, AdmissionDate: "2024-08-01"}
		require.NoError(t, s.CreateStudent(ctx, student, "user-1"))
		assert.False(t, seen[student.StudentID], "duplicate student number %s", student.StudentID)
		assert.Regexp(t, `^STU\d+$`, student.StudentID)
		seen[student.StudentID] = true
	}
}

func TestGetStudents_InsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	first := newTestStudent(t, s)
	second := newTestStudent(t, s)
	third := newTestStudent(t, s)

	students, err := s.GetStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{students[0].ID, students[1].ID, students[2].ID})
}

func TestUpdateStudent_PartialMerge(t *testing.T) {
	s := New()
	ctx := context.Background()
	student := newTestStudent(t, s)

	graduated := models.StudentGraduated
	updated, err := s.UpdateStudent(ctx, student.ID, models.StudentPatch{Status: &graduated})
	require.NoError(t, err)

	assert.Equal(t, models.StudentGraduated, updated.Status)
	assert.Equal(t, student.Course, updated.Course)
	assert.Equal(t, student.Email, updated.Email)
	assert.Equal(t, student.StudentID, updated.StudentID)
}

func TestUpdateStudent_NotFoundDoesNotMutate(t *testing.T) {
	s := New()
	ctx := context.Background()
	student := newTestStudent(t, s)

	name := "Changed"
	_, err := s.UpdateStudent(ctx, "no-such-id", models.StudentPatch{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	got, err := s.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", got.Name)
}

func TestUpdateStudent_GraduatedIsTerminal(t *testing.T) {
	s := New()
	ctx := context.Background()
	student := newTestStudent(t, s)

	graduated := models.StudentGraduated
	_, err := s.UpdateStudent(ctx, student.ID, models.StudentPatch{Status: &graduated})
	require.NoError(t, err)

	active := models.StudentActive
	_, err = s.UpdateStudent(ctx, student.ID, models.StudentPatch{Status: &active})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestTotalFeesCollected(t *testing.T) {
	s := New()
	ctx := context.Background()
	student := newTestStudent(t, s)

	completed := &models.Fee{StudentID: student.ID, Amount: 45000, PaymentDate: "2024-07-12", PaymentMethod: "upi"}
	require.NoError(t, s.CreateFee(ctx, completed))
	assert.Equal(t, models.FeeCompleted, completed.Status) // default

	total, err := s.TotalFeesCollected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, total)

	// A pending fee does not change the total.
	pending := &models.Fee{StudentID: student.ID, Amount: 5000, PaymentDate: "2024-07-13", PaymentMethod: "cash", Status: models.FeePending}
	require.NoError(t, s.CreateFee(ctx, pending))

	total, err = s.TotalFeesCollected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45000.0, total)

	// Completing the pending fee increases the total by its amount.
	done := models.FeeCompleted
	_, err = s.UpdateFee(ctx, pending.ID, models.FeePatch{Status: &done})
	require.NoError(t, err)

	total, err = s.TotalFeesCollected(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, total)
}

func TestCreateFee_NegativeAmountRejected(t *testing.T) {
	s := New()
	err := s.CreateFee(context.Background(), &models.Fee{StudentID: "st", Amount: -1, PaymentDate: "2024-07-12", PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrNegativeAmount)

	fees, getErr := s.GetFees(context.Background())
	require.NoError(t, getErr)
	assert.Empty(t, fees)
}

func TestUpdateFee_CompletedIsTerminal(t *testing.T) {
	s := New()
	ctx := context.Background()

	fee := &models.Fee{StudentID: "st", Amount: 100, PaymentDate: "2024-07-12", PaymentMethod: "card"}
	require.NoError(t, s.CreateFee(ctx, fee))

	pending := models.FeePending
	_, err := s.UpdateFee(ctx, fee.ID, models.FeePatch{Status: &pending})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestHostelOccupancy(t *testing.T) {
	s := New(WithHostelCapacity(50))
	ctx := context.Background()

	occ, err := s.HostelOccupancy(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.HostelOccupancy{Total: 50, Occupied: 0}, occ)

	hostel := &models.Hostel{StudentID: "st-1", RoomNo: "B-204", Block: "B", AllocationDate: "2024-08-01"}
	require.NoError(t, s.CreateHostel(ctx, hostel))
	assert.Equal(t, models.HostelAllocated, hostel.Status) // default

	occ, err = s.HostelOccupancy(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, occ.Occupied)

	// Vacating frees the slot.
	vacated := models.HostelVacated
	_, err = s.UpdateHostel(ctx, hostel.ID, models.HostelPatch{Status: &vacated})
	require.NoError(t, err)

	occ, err = s.HostelOccupancy(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, occ.Occupied)
}

func TestCreateHostel_DoubleAllocationRejected(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateHostel(ctx, &models.Hostel{StudentID: "st-1", RoomNo: "B-204", Block: "B", AllocationDate: "2024-08-01"}))

	err := s.CreateHostel(ctx, &models.Hostel{StudentID: "st-1", RoomNo: "C-101", Block: "C", AllocationDate: "2024-08-02"})
	assert.ErrorIs(t, err, apperrors.ErrHostelAlreadyAllocated)

	// After vacating, a fresh allocation is allowed again.
	hostel, err := s.GetHostelByStudentID(ctx, "st-1")
	require.NoError(t, err)
	vacated := models.HostelVacated
	_, err = s.UpdateHostel(ctx, hostel.ID, models.HostelPatch{Status: &vacated})
	require.NoError(t, err)

	require.NoError(t, s.CreateHostel(ctx, &models.Hostel{StudentID: "st-1", RoomNo: "C-101", Block: "C", AllocationDate: "2024-09-01"}))
}

func TestBooksIssuedToday(t *testing.T) {
	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	today := helpers.FormatDate(now)
	yesterday := helpers.FormatDate(now.AddDate(0, 0, -1))

	require.NoError(t, s.CreateLibraryBook(ctx, &models.LibraryBook{StudentID: "st-1", BookID: "BK-1", BookTitle: "A", Author: "X", IssueDate: today, DueDate: "2025-03-16"}))
	require.NoError(t, s.CreateLibraryBook(ctx, &models.LibraryBook{StudentID: "st-1", BookID: "BK-2", BookTitle: "B", Author: "Y", IssueDate: yesterday, DueDate: "2025-03-15"}))

	count, err := s.BooksIssuedToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateLibraryBook_ReturnFlow(t *testing.T) {
	s := New()
	ctx := context.Background()

	book := &models.LibraryBook{StudentID: "st-1", BookID: "BK-1", BookTitle: "A", Author: "X", IssueDate: "2025-03-01", DueDate: "2025-03-15"}
	require.NoError(t, s.CreateLibraryBook(ctx, book))
	assert.Equal(t, models.BookIssued, book.Status) // default

	// Return date without a return transition is rejected.
	rd := "2025-03-10"
	_, err := s.UpdateLibraryBook(ctx, book.ID, models.LibraryBookPatch{ReturnDate: &rd})
	assert.ErrorIs(t, err, apperrors.ErrReturnDateWithoutReturn)

	returned := models.BookReturned
	updated, err := s.UpdateLibraryBook(ctx, book.ID, models.LibraryBookPatch{Status: &returned, ReturnDate: &rd})
	require.NoError(t, err)
	require.NotNil(t, updated.ReturnDate)
	assert.Equal(t, rd, *updated.ReturnDate)

	// Returned is terminal: re-issuing is rejected.
	issued := models.BookIssued
	_, err = s.UpdateLibraryBook(ctx, book.ID, models.LibraryBookPatch{Status: &issued})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestUpdateLibraryBook_OverdueCanStillBeReturned(t *testing.T) {
	s := New()
	ctx := context.Background()

	book := &models.LibraryBook{StudentID: "st-1", BookID: "BK-1", BookTitle: "A", Author: "X", IssueDate: "2025-01-01", DueDate: "2025-01-15"}
	require.NoError(t, s.CreateLibraryBook(ctx, book))

	overdue := models.BookOverdue
	_, err := s.UpdateLibraryBook(ctx, book.ID, models.LibraryBookPatch{Status: &overdue})
	require.NoError(t, err)

	returned := models.BookReturned
	updated, err := s.UpdateLibraryBook(ctx, book.ID, models.LibraryBookPatch{Status: &returned})
	require.NoError(t, err)
	require.NotNil(t, updated.ReturnDate) // defaulted to today
}

func TestCreateExam_MarksValidation(t *testing.T) {
	s := New()
	ctx := context.Background()

	tests := []struct {
		name       string
		marks      int
		totalMarks int
		wantErr    error
	}{
		{name: "valid", marks: 85, totalMarks: 100},
		{name: "total defaults to 100", marks: 85},
		{name: "marks above total", marks: 110, totalMarks: 100, wantErr: apperrors.ErrMarksOutOfRange},
		{name: "negative marks", marks: -5, totalMarks: 100, wantErr: apperrors.ErrMarksOutOfRange},
		{name: "marks equal total", marks: 50, totalMarks: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := &models.Exam{StudentID: "st-1", Subject: "Physics", Marks: tt.marks, TotalMarks: tt.totalMarks, Grade: "A", ExamDate: "2024-11-20", ExamType: models.ExamMidterm}
			err := s.CreateExam(ctx, exam)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.totalMarks == 0 {
				assert.Equal(t, 100, exam.TotalMarks)
			}
		})
	}
}

func TestAverageExamPerformance(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateExam(ctx, &models.Exam{StudentID: "st-1", Subject: "Mathematics", Marks: 80, TotalMarks: 100, Grade: "B", ExamDate: "2024-11-20", ExamType: models.ExamMidterm}))
	require.NoError(t, s.CreateExam(ctx, &models.Exam{StudentID: "st-2", Subject: "Mathematics", Marks: 90, TotalMarks: 100, Grade: "A", ExamDate: "2024-11-20", ExamType: models.ExamMidterm}))
	require.NoError(t, s.CreateExam(ctx, &models.Exam{StudentID: "st-1", Subject: "Physics", Marks: 45, TotalMarks: 50, Grade: "A", ExamDate: "2024-11-22", ExamType: models.ExamQuiz}))

	averages, err := s.AverageExamPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, averages, 2)

	// First-seen subject order.
	assert.Equal(t, "Mathematics", averages[0].Subject)
	assert.Equal(t, 85.0, averages[0].Average)
	assert.Equal(t, "Physics", averages[1].Subject)
	assert.Equal(t, 90.0, averages[1].Average)
}

func TestResolveComplaint(t *testing.T) {
	s := New()
	ctx := context.Background()

	complaint := &models.HostelComplaint{StudentID: "st-1", Title: "Leaking tap", Description: "Bathroom tap leaks"}
	require.NoError(t, s.CreateComplaint(ctx, complaint))
	assert.Equal(t, models.ComplaintPending, complaint.Status)

	resolved, err := s.ResolveComplaint(ctx, complaint.ID, models.ComplaintResolved, "admin-1")
	require.NoError(t, err)
	require.NotNil(t, resolved.ResolvedAt)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, "admin-1", *resolved.ResolvedBy)

	// Resolved is terminal.
	_, err = s.ResolveComplaint(ctx, complaint.ID, models.ComplaintPending, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestCreateFaculty_EmployeeIDUnique(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateFaculty(ctx, &models.Faculty{UserID: "u-1", EmployeeID: "EMP-1", Department: "CS", Designation: "Professor", JoiningDate: "2019-07-01", Qualification: "PhD"}))

	err := s.CreateFaculty(ctx, &models.Faculty{UserID: "u-2", EmployeeID: "EMP-1", Department: "EE", Designation: "Lecturer", JoiningDate: "2021-07-01", Qualification: "MTech"})
	assert.ErrorIs(t, err, apperrors.ErrEmployeeIDAlreadyExists)
}

func TestAttendanceReport_DateRange(t *testing.T) {
	s := New()
	ctx := context.Background()

	records := []*models.Attendance{
		{StudentID: "st-1", CourseID: "c-1", Date: "2024-10-01", Status: models.AttendancePresent, MarkedBy: "f-1"},
		{StudentID: "st-1", CourseID: "c-1", Date: "2024-10-08", Status: models.AttendanceAbsent, MarkedBy: "f-1"},
		{StudentID: "st-1", CourseID: "c-2", Date: "2024-10-08", Status: models.AttendancePresent, MarkedBy: "f-1"},
		{StudentID: "st-1", CourseID: "c-1", Date: "2024-11-01", Status: models.AttendanceLate, MarkedBy: "f-1"},
	}
	require.NoError(t, s.CreateAttendance(ctx, records))

	report, err := s.GetAttendanceReport(ctx, "c-1", "2024-10-01", "2024-10-31")
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "2024-10-01", report[0].Date)
	assert.Equal(t, "2024-10-08", report[1].Date)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	student := newTestStudent(t, s)

	got, err := s.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	got.Name = "mutated outside the store"

	again, err := s.GetStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", again.Name)
}
