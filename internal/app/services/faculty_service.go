package services

import (
	"context"
	"errors"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// FacultyService handles faculty profiles, courses and attendance
type FacultyService struct {
	store storage.Storage
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(store storage.Storage) *FacultyService {
	return &FacultyService{
		store: store,
	}
}

// CreateProfile creates a faculty profile for an existing user account.
func (s *FacultyService) CreateProfile(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStaff && user.Role != models.RoleAdmin {
		return nil, apperrors.ErrInvalidRole
	}

	faculty := &models.Faculty{
		UserID:        req.UserID,
		EmployeeID:    req.EmployeeID,
		Department:    req.Department,
		Designation:   req.Designation,
		JoiningDate:   req.JoiningDate,
		Qualification: req.Qualification,
	}

	if err := s.store.CreateFaculty(ctx, faculty); err != nil {
		return nil, err
	}

	logger.Info().Str("employee_id", faculty.EmployeeID).Str("department", faculty.Department).Msg("Faculty profile created")
	return faculty, nil
}

// GetProfileByUser returns the faculty profile owned by a user account.
func (s *FacultyService) GetProfileByUser(ctx context.Context, userID string) (*models.Faculty, error) {
	return s.store.GetFacultyByUserID(ctx, userID)
}

// GetProfiles returns all faculty profiles.
func (s *FacultyService) GetProfiles(ctx context.Context) ([]*models.Faculty, error) {
	return s.store.GetFaculties(ctx)
}

// CreateCourse registers a course taught by the acting faculty member.
func (s *FacultyService) CreateCourse(ctx context.Context, userID string, req dto.CreateCourseRequest) (*models.Course, error) {
	faculty, err := s.store.GetFacultyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:       req.Name,
		Code:       req.Code,
		Department: req.Department,
		Semester:   req.Semester,
		Credits:    req.Credits,
		FacultyID:  faculty.ID,
	}

	if err := s.store.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourses returns the courses taught by the acting faculty member.
func (s *FacultyService) GetCourses(ctx context.Context, userID string) ([]*models.Course, error) {
	faculty, err := s.store.GetFacultyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.GetCoursesByFacultyID(ctx, faculty.ID)
}

// MarkAttendance stores a batch of attendance marks for one course and date.
// Every referenced student must exist, and the batch is applied atomically.
func (s *FacultyService) MarkAttendance(ctx context.Context, userID string, req dto.MarkAttendanceRequest) ([]*models.Attendance, error) {
	faculty, err := s.store.GetFacultyByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]*models.Attendance, 0, len(req.Marks))
	for _, mark := range req.Marks {
		if _, err := s.store.GetStudent(ctx, mark.StudentID); err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrStudentNotFound
			}
			return nil, err
		}
		records = append(records, &models.Attendance{
			StudentID: mark.StudentID,
			CourseID:  req.CourseID,
			Date:      req.Date,
			Status:    mark.Status,
			MarkedBy:  faculty.ID,
		})
	}

	if err := s.store.CreateAttendance(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAttendanceReport returns attendance marks for a course within an
// inclusive date range. Empty bounds leave that side open.
func (s *FacultyService) GetAttendanceReport(ctx context.Context, courseID, from, to string) ([]*models.Attendance, error) {
	return s.store.GetAttendanceReport(ctx, courseID, from, to)
}
