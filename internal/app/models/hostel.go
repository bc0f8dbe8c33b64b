package models

import (
	"time"
)

// Hostel defines a room allocation record based on the 'hostels' table
type Hostel struct {
	ID             string       `json:"id" db:"id"`
	StudentID      string       `json:"studentId" db:"student_id"` // ID of the owning student record
	RoomNo         string       `json:"roomNo" db:"room_no" example:"B-204"`
	Block          string       `json:"block" db:"block" example:"B"`
	AllocationDate string       `json:"allocationDate" db:"allocation_date" example:"2024-08-01"` // Date-only, YYYY-MM-DD
	Status         HostelStatus `json:"status" db:"status" example:"allocated"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
}

// HostelPatch carries a partial update for a hostel allocation.
type HostelPatch struct {
	RoomNo *string       `json:"roomNo,omitempty"`
	Block  *string       `json:"block,omitempty"`
	Status *HostelStatus `json:"status,omitempty"`
}

// HostelOccupancy reports hostel usage. Total is the configured capacity,
// not derived from room records.
type HostelOccupancy struct {
	Total    int `json:"total" example:"275"`
	Occupied int `json:"occupied" example:"198"`
}

// HostelComplaint defines a maintenance complaint filed by a student
type HostelComplaint struct {
	ID          string          `json:"id" db:"id"`
	StudentID   string          `json:"studentId" db:"student_id"` // ID of the filing student record
	Title       string          `json:"title" db:"title" example:"Leaking tap"`
	Description string          `json:"description" db:"description"`
	Status      ComplaintStatus `json:"status" db:"status" example:"pending"`
	ResolvedBy  *string         `json:"resolvedBy,omitempty" db:"resolved_by"` // User ID of the resolver
	ResolvedAt  *time.Time      `json:"resolvedAt,omitempty" db:"resolved_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
