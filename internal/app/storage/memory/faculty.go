package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetFacultyByUserID retrieves the faculty profile owned by a user account.
func (s *Store) GetFacultyByUserID(ctx context.Context, userID string) (*models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.facultyOrder {
		if s.faculty[id].UserID == userID {
			return copyFaculty(s.faculty[id]), nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

// GetFaculties returns all faculty profiles in insertion order.
func (s *Store) GetFaculties(ctx context.Context) ([]*models.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	faculties := make([]*models.Faculty, 0, len(s.facultyOrder))
	for _, id := range s.facultyOrder {
		faculties = append(faculties, copyFaculty(s.faculty[id]))
	}
	return faculties, nil
}

// CreateFaculty stores a new faculty profile. Employee IDs are unique.
func (s *Store) CreateFaculty(ctx context.Context, faculty *models.Faculty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.facultyOrder {
		if s.faculty[id].EmployeeID == faculty.EmployeeID {
			return apperrors.ErrEmployeeIDAlreadyExists
		}
	}

	faculty.ID = newID()
	faculty.CreatedAt = s.nowFunc()

	s.faculty[faculty.ID] = copyFaculty(faculty)
	s.facultyOrder = append(s.facultyOrder, faculty.ID)
	return nil
}

// GetCoursesByFacultyID returns the courses taught by a faculty member.
func (s *Store) GetCoursesByFacultyID(ctx context.Context, facultyID string) ([]*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []*models.Course
	for _, id := range s.courseOrder {
		if s.courses[id].FacultyID == facultyID {
			courses = append(courses, copyCourse(s.courses[id]))
		}
	}
	return courses, nil
}

// CreateCourse stores a new course. Course codes are unique.
func (s *Store) CreateCourse(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.courseOrder {
		if s.courses[id].Code == course.Code {
			return apperrors.ErrCourseCodeAlreadyExists
		}
	}

	course.ID = newID()
	course.CreatedAt = s.nowFunc()

	s.courses[course.ID] = copyCourse(course)
	s.courseOrder = append(s.courseOrder, course.ID)
	return nil
}

// CreateAttendance records a batch of attendance marks. The batch is applied
// atomically under the write lock: either every record is stored or none.
func (s *Store) CreateAttendance(ctx context.Context, records []*models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		if record.Status == "" {
			return apperrors.ErrInvalidStatus
		}
	}

	now := s.nowFunc()
	for _, record := range records {
		record.ID = newID()
		record.CreatedAt = now
		s.attendance[record.ID] = copyAttendance(record)
		s.attendanceOrder = append(s.attendanceOrder, record.ID)
	}
	return nil
}

// GetAttendanceReport returns attendance marks for a course within an
// inclusive date range. Dates compare lexically, which is correct for the
// YYYY-MM-DD layout.
func (s *Store) GetAttendanceReport(ctx context.Context, courseID, from, to string) ([]*models.Attendance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var report []*models.Attendance
	for _, id := range s.attendanceOrder {
		record := s.attendance[id]
		if record.CourseID != courseID {
			continue
		}
		if (from != "" && record.Date < from) || (to != "" && record.Date > to) {
			continue
		}
		report = append(report, copyAttendance(record))
	}
	return report, nil
}

func copyFaculty(f *models.Faculty) *models.Faculty {
	c := *f
	return &c
}

func copyCourse(c *models.Course) *models.Course {
	cp := *c
	return &cp
}

func copyAttendance(a *models.Attendance) *models.Attendance {
	c := *a
	return &c
}
