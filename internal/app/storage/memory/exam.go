package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetExams returns all exam records in insertion order.
func (s *Store) GetExams(ctx context.Context) ([]*models.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exams := make([]*models.Exam, 0, len(s.examOrder))
	for _, id := range s.examOrder {
		exams = append(exams, copyExam(s.exams[id]))
	}
	return exams, nil
}

// GetExamsByStudentID returns the exam records of a student.
func (s *Store) GetExamsByStudentID(ctx context.Context, studentID string) ([]*models.Exam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exams []*models.Exam
	for _, id := range s.examOrder {
		if s.exams[id].StudentID == studentID {
			exams = append(exams, copyExam(s.exams[id]))
		}
	}
	return exams, nil
}

// CreateExam stores a new exam record. Total marks default to 100 and marks
// must lie within [0, totalMarks].
func (s *Store) CreateExam(ctx context.Context, exam *models.Exam) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exam.TotalMarks == 0 {
		exam.TotalMarks = 100
	}
	if exam.TotalMarks < 0 || exam.Marks < 0 || exam.Marks > exam.TotalMarks {
		return apperrors.ErrMarksOutOfRange
	}

	exam.ID = newID()
	exam.CreatedAt = s.nowFunc()

	s.exams[exam.ID] = copyExam(exam)
	s.examOrder = append(s.examOrder, exam.ID)
	return nil
}

// AverageExamPerformance groups exam records by subject and averages
// marks/totalMarks*100 within each group. Subjects appear in first-seen
// order so repeated calls produce identical output.
func (s *Store) AverageExamPerformance(ctx context.Context) ([]models.SubjectAverage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, id := range s.examOrder {
		exam := s.exams[id]
		if _, seen := sums[exam.Subject]; !seen {
			order = append(order, exam.Subject)
		}
		sums[exam.Subject] += float64(exam.Marks) / float64(exam.TotalMarks) * 100
		counts[exam.Subject]++
	}

	averages := make([]models.SubjectAverage, 0, len(order))
	for _, subject := range order {
		averages = append(averages, models.SubjectAverage{
			Subject: subject,
			Average: sums[subject] / float64(counts[subject]),
		})
	}
	return averages, nil
}

func copyExam(e *models.Exam) *models.Exam {
	c := *e
	return &c
}
