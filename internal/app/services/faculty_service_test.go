package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage/memory"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

func seedStaffUser(t *testing.T, store *memory.Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash", Email: username + "@test.edu", Role: models.RoleStaff}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func seedFacultyProfile(t *testing.T, svc *FacultyService, userID string) *models.Faculty {
	t.Helper()
	faculty, err := svc.CreateProfile(context.Background(), dto.CreateFacultyRequest{
		UserID:      userID,
		EmployeeID:  "EMP-100",
		Department:  "Computer Science",
		Designation: "Assistant Professor",
		JoiningDate: "2020-07-01",
	})
	require.NoError(t, err)
	return faculty
}

func TestCreateProfile_RequiresStaffRole(t *testing.T) {
	store := memory.New()
	svc := NewFacultyService(store)
	ctx := context.Background()

	student := &models.User{Username: "rahul", Password: "hash", Email: "rahul@test.edu", Role: models.RoleStudent}
	require.NoError(t, store.CreateUser(ctx, student))

	_, err := svc.CreateProfile(ctx, dto.CreateFacultyRequest{
		UserID:      student.ID,
		EmployeeID:  "EMP-100",
		Department:  "Computer Science",
		Designation: "Assistant Professor",
		JoiningDate: "2020-07-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestCreateCourse_LinksActingFaculty(t *testing.T) {
	store := memory.New()
	svc := NewFacultyService(store)
	ctx := context.Background()

	user := seedStaffUser(t, store, "prof")
	faculty := seedFacultyProfile(t, svc, user.ID)

	course, err := svc.CreateCourse(ctx, user.ID, dto.CreateCourseRequest{
		Name:       "Data Structures",
		Code:       "CS201",
		Department: "Computer Science",
		Semester:   3,
		Credits:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, faculty.ID, course.FacultyID)

	courses, err := svc.GetCourses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "CS201", courses[0].Code)
}

func TestMarkAttendance_UnknownStudentRejectsBatch(t *testing.T) {
	store := memory.New()
	svc := NewFacultyService(store)
	ctx := context.Background()

	user := seedStaffUser(t, store, "prof")
	seedFacultyProfile(t, svc, user.ID)

	student := &models.Student{Name: "Rahul", Email: "rahul@test.edu", Course: "CS", Year: 2, AdmissionDate: "2023-08-01"}
	require.NoError(t, store.CreateStudent(ctx, student, ""))

	_, err := svc.MarkAttendance(ctx, user.ID, dto.MarkAttendanceRequest{
		CourseID: "course-1",
		Date:     "2025-03-01",
		Marks: []dto.AttendanceMark{
			{StudentID: student.ID, Status: models.AttendancePresent},
			{StudentID: "missing", Status: models.AttendanceAbsent},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	// The valid mark must not have been stored either.
	report, err := svc.GetAttendanceReport(ctx, "course-1", "", "")
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestMarkAttendance_ReportFiltersByDateRange(t *testing.T) {
	store := memory.New()
	svc := NewFacultyService(store)
	ctx := context.Background()

	user := seedStaffUser(t, store, "prof")
	faculty := seedFacultyProfile(t, svc, user.ID)

	student := &models.Student{Name: "Rahul", Email: "rahul@test.edu", Course: "CS", Year: 2, AdmissionDate: "2023-08-01"}
	require.NoError(t, store.CreateStudent(ctx, student, ""))

	for _, date := range []string{"2025-03-01", "2025-03-02", "2025-03-10"} {
		records, err := svc.MarkAttendance(ctx, user.ID, dto.MarkAttendanceRequest{
			CourseID: "course-1",
			Date:     date,
			Marks:    []dto.AttendanceMark{{StudentID: student.ID, Status: models.AttendancePresent}},
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, faculty.ID, records[0].MarkedBy)
	}

	report, err := svc.GetAttendanceReport(ctx, "course-1", "2025-03-01", "2025-03-05")
	require.NoError(t, err)
	assert.Len(t, report, 2)
}
