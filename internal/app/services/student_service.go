package services

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// StudentService handles student record operations
type StudentService struct {
	store storage.Storage
}

// NewStudentService creates a new student service instance
func NewStudentService(store storage.Storage) *StudentService {
	return &StudentService{
		store: store,
	}
}

// CreateStudent enrolls a new student. The student number is generated by
// the store; userID links the record to an account and may be empty when an
// administrator enrolls a student without login access.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, userID string) (*models.Student, error) {
	student := &models.Student{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		Course:        req.Course,
		Year:          req.Year,
		AdmissionDate: req.AdmissionDate,
	}

	if err := s.store.CreateStudent(ctx, student, userID); err != nil {
		return nil, err
	}

	logger.Info().Str("student_id", student.StudentID).Str("course", student.Course).Msg("Student enrolled")
	return student, nil
}

// GetStudents returns all student records.
func (s *StudentService) GetStudents(ctx context.Context) ([]*models.Student, error) {
	return s.store.GetStudents(ctx)
}

// GetStudent retrieves a student record by ID.
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.store.GetStudent(ctx, id)
}

// GetStudentByUserID retrieves the student record owned by a user account.
func (s *StudentService) GetStudentByUserID(ctx context.Context, userID string) (*models.Student, error) {
	return s.store.GetStudentByUserID(ctx, userID)
}

// UpdateStudent applies a partial update to a student record.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	return s.store.UpdateStudent(ctx, id, patch)
}
