package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// CreateComplaint stores a new hostel complaint with status pending.
func (s *Store) CreateComplaint(ctx context.Context, complaint *models.HostelComplaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if complaint.Status == "" {
		complaint.Status = models.ComplaintPending
	}

	complaint.ID = newID()
	complaint.CreatedAt = s.nowFunc()

	s.complaints[complaint.ID] = copyComplaint(complaint)
	s.complaintOrder = append(s.complaintOrder, complaint.ID)
	return nil
}

// GetComplaints returns all hostel complaints in insertion order.
func (s *Store) GetComplaints(ctx context.Context) ([]*models.HostelComplaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	complaints := make([]*models.HostelComplaint, 0, len(s.complaintOrder))
	for _, id := range s.complaintOrder {
		complaints = append(complaints, copyComplaint(s.complaints[id]))
	}
	return complaints, nil
}

// GetComplaintsByStudentID returns the complaints filed by a student.
func (s *Store) GetComplaintsByStudentID(ctx context.Context, studentID string) ([]*models.HostelComplaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var complaints []*models.HostelComplaint
	for _, id := range s.complaintOrder {
		if s.complaints[id].StudentID == studentID {
			complaints = append(complaints, copyComplaint(s.complaints[id]))
		}
	}
	return complaints, nil
}

// ResolveComplaint advances a complaint's status. Resolution metadata is
// recorded when the complaint reaches the resolved state.
func (s *Store) ResolveComplaint(ctx context.Context, id string, status models.ComplaintStatus, resolvedBy string) (*models.HostelComplaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaint, ok := s.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}

	if !models.CanTransitionComplaint(complaint.Status, status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated := copyComplaint(complaint)
	updated.Status = status
	if status == models.ComplaintResolved {
		now := s.nowFunc()
		updated.ResolvedAt = &now
		updated.ResolvedBy = &resolvedBy
	}

	s.complaints[id] = updated
	return copyComplaint(updated), nil
}

func copyComplaint(c *models.HostelComplaint) *models.HostelComplaint {
	cp := *c
	if c.ResolvedBy != nil {
		rb := *c.ResolvedBy
		cp.ResolvedBy = &rb
	}
	if c.ResolvedAt != nil {
		ra := *c.ResolvedAt
		cp.ResolvedAt = &ra
	}
	return &cp
}
