package memory

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/pkg/apperrors"
)

// GetHostels returns all hostel allocation records in insertion order.
func (s *Store) GetHostels(ctx context.Context) ([]*models.Hostel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hostels := make([]*models.Hostel, 0, len(s.hostelOrder))
	for _, id := range s.hostelOrder {
		hostels = append(hostels, copyHostel(s.hostels[id]))
	}
	return hostels, nil
}

// GetHostelByStudentID retrieves a student's hostel allocation. When a
// student has both vacated and active records the active one wins.
func (s *Store) GetHostelByStudentID(ctx context.Context, studentID string) (*models.Hostel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *models.Hostel
	for _, id := range s.hostelOrder {
		h := s.hostels[id]
		if h.StudentID != studentID {
			continue
		}
		if h.Status == models.HostelAllocated {
			return copyHostel(h), nil
		}
		if found == nil {
			found = h
		}
	}
	if found == nil {
		return nil, apperrors.ErrHostelNotFound
	}
	return copyHostel(found), nil
}

// CreateHostel stores a new allocation. The status defaults to allocated; a
// student may hold at most one active allocation at a time.
func (s *Store) CreateHostel(ctx context.Context, hostel *models.Hostel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hostel.Status == "" {
		hostel.Status = models.HostelAllocated
	}

	if hostel.Status == models.HostelAllocated {
		for _, id := range s.hostelOrder {
			existing := s.hostels[id]
			if existing.StudentID == hostel.StudentID && existing.Status == models.HostelAllocated {
				return apperrors.ErrHostelAlreadyAllocated
			}
		}
	}

	hostel.ID = newID()
	hostel.CreatedAt = s.nowFunc()

	s.hostels[hostel.ID] = copyHostel(hostel)
	s.hostelOrder = append(s.hostelOrder, hostel.ID)
	return nil
}

// UpdateHostel merges the set fields of the patch into the stored record.
// The only allowed status change is allocated to vacated.
func (s *Store) UpdateHostel(ctx context.Context, id string, patch models.HostelPatch) (*models.Hostel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hostel, ok := s.hostels[id]
	if !ok {
		return nil, apperrors.ErrHostelNotFound
	}

	if patch.Status != nil && !models.CanTransitionHostel(hostel.Status, *patch.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated := copyHostel(hostel)
	if patch.RoomNo != nil {
		updated.RoomNo = *patch.RoomNo
	}
	if patch.Block != nil {
		updated.Block = *patch.Block
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}

	s.hostels[id] = updated
	return copyHostel(updated), nil
}

// HostelOccupancy reports the configured capacity and the count of active
// allocations at call time.
func (s *Store) HostelOccupancy(ctx context.Context) (models.HostelOccupancy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occupied := 0
	for _, id := range s.hostelOrder {
		if s.hostels[id].Status == models.HostelAllocated {
			occupied++
		}
	}
	return models.HostelOccupancy{Total: s.hostelCapacity, Occupied: occupied}, nil
}

func copyHostel(h *models.Hostel) *models.Hostel {
	c := *h
	return &c
}
