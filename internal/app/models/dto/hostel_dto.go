package dto

import "github.com/mertkaya/edumanage/internal/app/models"

// CreateHostelRequest represents the payload for allocating a hostel room
type CreateHostelRequest struct {
	StudentID      string `json:"studentId" binding:"required"`
	RoomNo         string `json:"roomNo" binding:"required,roomnumber"`
	Block          string `json:"block" binding:"required"`
	AllocationDate string `json:"allocationDate" binding:"required,dateformat"`
}

// UpdateHostelRequest represents a partial hostel allocation update
type UpdateHostelRequest struct {
	RoomNo *string              `json:"roomNo,omitempty"`
	Block  *string              `json:"block,omitempty"`
	Status *models.HostelStatus `json:"status,omitempty" binding:"omitempty,oneof=allocated vacated"`
}

// Patch converts the request into a storage patch.
func (r UpdateHostelRequest) Patch() models.HostelPatch {
	return models.HostelPatch{
		RoomNo: r.RoomNo,
		Block:  r.Block,
		Status: r.Status,
	}
}

// CreateComplaintRequest represents the payload for filing a hostel complaint
type CreateComplaintRequest struct {
	StudentID   string `json:"studentId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ResolveComplaintRequest advances a complaint through its workflow
type ResolveComplaintRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required,oneof=pending in_progress resolved"`
}
