package services

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
)

// ExamService handles exam results and performance aggregates
type ExamService struct {
	store storage.Storage
}

// NewExamService creates a new exam service instance
func NewExamService(store storage.Storage) *ExamService {
	return &ExamService{
		store: store,
	}
}

// RecordResult stores an exam result for an existing student.
func (s *ExamService) RecordResult(ctx context.Context, req dto.CreateExamRequest) (*models.Exam, error) {
	if _, err := s.store.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		StudentID:  req.StudentID,
		Subject:    req.Subject,
		Marks:      req.Marks,
		TotalMarks: req.TotalMarks,
		Grade:      req.Grade,
		ExamDate:   req.ExamDate,
		ExamType:   req.ExamType,
	}

	if err := s.store.CreateExam(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// GetResults returns all exam records.
func (s *ExamService) GetResults(ctx context.Context) ([]*models.Exam, error) {
	return s.store.GetExams(ctx)
}

// GetResultsByStudent returns the exam records of a student.
func (s *ExamService) GetResultsByStudent(ctx context.Context, studentID string) ([]*models.Exam, error) {
	if _, err := s.store.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.store.GetExamsByStudentID(ctx, studentID)
}

// GetAveragePerformance returns per-subject average percentages.
func (s *ExamService) GetAveragePerformance(ctx context.Context) ([]models.SubjectAverage, error) {
	return s.store.AverageExamPerformance(ctx)
}
