package services

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/storage"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
)

// HostelService handles room allocations, occupancy and complaints
type HostelService struct {
	store storage.Storage
}

// NewHostelService creates a new hostel service instance
func NewHostelService(store storage.Storage) *HostelService {
	return &HostelService{
		store: store,
	}
}

// AllocateRoom creates a hostel allocation for an existing student.
func (s *HostelService) AllocateRoom(ctx context.Context, req dto.CreateHostelRequest) (*models.Hostel, error) {
	if _, err := s.store.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	hostel := &models.Hostel{
		StudentID:      req.StudentID,
		RoomNo:         req.RoomNo,
		Block:          req.Block,
		AllocationDate: req.AllocationDate,
	}

	if err := s.store.CreateHostel(ctx, hostel); err != nil {
		return nil, err
	}

	logger.Info().Str("student_id", hostel.StudentID).Str("room", hostel.RoomNo).Msg("Hostel room allocated")
	return hostel, nil
}

// GetAllocations returns all hostel allocations.
func (s *HostelService) GetAllocations(ctx context.Context) ([]*models.Hostel, error) {
	return s.store.GetHostels(ctx)
}

// GetAllocationByStudent returns a student's hostel record.
func (s *HostelService) GetAllocationByStudent(ctx context.Context, studentID string) (*models.Hostel, error) {
	return s.store.GetHostelByStudentID(ctx, studentID)
}

// UpdateAllocation applies a partial update to an allocation.
func (s *HostelService) UpdateAllocation(ctx context.Context, id string, patch models.HostelPatch) (*models.Hostel, error) {
	return s.store.UpdateHostel(ctx, id, patch)
}

// GetOccupancy reports the configured capacity and active allocation count.
func (s *HostelService) GetOccupancy(ctx context.Context) (models.HostelOccupancy, error) {
	return s.store.HostelOccupancy(ctx)
}

// FileComplaint records a hostel complaint for an existing student.
func (s *HostelService) FileComplaint(ctx context.Context, req dto.CreateComplaintRequest) (*models.HostelComplaint, error) {
	if _, err := s.store.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	complaint := &models.HostelComplaint{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.store.CreateComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// GetComplaints returns all hostel complaints.
func (s *HostelService) GetComplaints(ctx context.Context) ([]*models.HostelComplaint, error) {
	return s.store.GetComplaints(ctx)
}

// GetComplaintsByStudent returns the complaints filed by a student.
func (s *HostelService) GetComplaintsByStudent(ctx context.Context, studentID string) ([]*models.HostelComplaint, error) {
	return s.store.GetComplaintsByStudentID(ctx, studentID)
}

// ResolveComplaint advances a complaint's workflow status on behalf of the
// acting staff user.
func (s *HostelService) ResolveComplaint(ctx context.Context, id string, status models.ComplaintStatus, resolvedBy string) (*models.HostelComplaint, error) {
	return s.store.ResolveComplaint(ctx, id, status, resolvedBy)
}
