package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetStudent retrieves a student by record ID.
func (s *Store) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return copyStudent(student), nil
}

// GetStudentByUserID retrieves the student owned by a user account.
func (s *Store) GetStudentByUserID(ctx context.Context, userID string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studentOrder {
		if s.students[id].UserID == userID {
			return copyStudent(s.students[id]), nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetStudentByStudentID retrieves a student by generated student number.
func (s *Store) GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.studentOrder {
		if s.students[id].StudentID == studentID {
			return copyStudent(s.students[id]), nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// GetStudents returns all students in insertion order.
func (s *Store) GetStudents(ctx context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]*models.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		students = append(students, copyStudent(s.students[id]))
	}
	return students, nil
}

// CreateStudent stores a new student linked to the given user account. The
// student number is generated here and immutable afterwards; the status
// defaults to active.
func (s *Store) CreateStudent(ctx context.Context, student *models.Student, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if student.Status == "" {
		student.Status = models.StudentActive
	}

	student.ID = newID()
	student.UserID = userID
	student.StudentID = s.nextStudentNumber()
	student.CreatedAt = s.nowFunc()

	s.students[student.ID] = copyStudent(student)
	s.studentOrder = append(s.studentOrder, student.ID)
	return nil
}

// UpdateStudent merges the set fields of the patch into the stored record.
// Nothing is mutated when the student does not exist or the status change is
// not allowed.
func (s *Store) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	if patch.Status != nil && !models.CanTransitionStudent(student.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated := copyStudent(student)
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		updated.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Address != nil {
		updated.Address = *patch.Address
	}
	if patch.Course != nil {
		updated.Course = *patch.Course
	}
	if patch.Year != nil {
		updated.Year = *patch.Year
	}
	if patch.AdmissionDate != nil {
		updated.AdmissionDate = *patch.AdmissionDate
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}

	s.students[id] = updated
	return copyStudent(updated), nil
}

func copyStudent(st *models.Student) *models.Student {
	c := *st
	return &c
}
