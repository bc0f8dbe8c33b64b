package models

// Role defines the user role types
type Role string

// User roles
const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// IsValid checks whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// StudentStatus defines the lifecycle states of a student record
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
)

// FeeStatus defines the payment states of a fee record
type FeeStatus string

const (
	FeePending   FeeStatus = "pending"
	FeeCompleted FeeStatus = "completed"
	FeeFailed    FeeStatus = "failed"
)

// HostelStatus defines the allocation states of a hostel record
type HostelStatus string

const (
	HostelAllocated HostelStatus = "allocated"
	HostelVacated   HostelStatus = "vacated"
)

// BookStatus defines the circulation states of a library book record
type BookStatus string

const (
	BookIssued   BookStatus = "issued"
	BookReturned BookStatus = "returned"
	BookOverdue  BookStatus = "overdue"
)

// ComplaintStatus defines the states of a hostel complaint
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// AttendanceStatus defines per-class attendance marks
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// ExamType defines the kind of examination
type ExamType string

const (
	ExamMidterm ExamType = "midterm"
	ExamFinal   ExamType = "final"
	ExamQuiz    ExamType = "quiz"
)

// Status transitions are one-way. Each map entry lists the states reachable
// from the key; absent keys are terminal.
var (
	studentTransitions = map[StudentStatus][]StudentStatus{
		StudentActive:   {StudentInactive, StudentGraduated},
		StudentInactive: {StudentActive, StudentGraduated},
	}

	feeTransitions = map[FeeStatus][]FeeStatus{
		FeePending: {FeeCompleted, FeeFailed},
	}

	hostelTransitions = map[HostelStatus][]HostelStatus{
		HostelAllocated: {HostelVacated},
	}

	bookTransitions = map[BookStatus][]BookStatus{
		BookIssued:  {BookReturned, BookOverdue},
		BookOverdue: {BookReturned},
	}

	complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
		ComplaintPending:    {ComplaintInProgress, ComplaintResolved},
		ComplaintInProgress: {ComplaintResolved},
	}
)

// CanTransitionStudent reports whether a student status change is allowed.
// A no-op transition (same status) is always allowed.
func CanTransitionStudent(from, to StudentStatus) bool {
	return from == to || containsStatus(studentTransitions[from], to)
}

// CanTransitionFee reports whether a fee status change is allowed.
func CanTransitionFee(from, to FeeStatus) bool {
	return from == to || containsStatus(feeTransitions[from], to)
}

// CanTransitionHostel reports whether a hostel status change is allowed.
func CanTransitionHostel(from, to HostelStatus) bool {
	return from == to || containsStatus(hostelTransitions[from], to)
}

// CanTransitionBook reports whether a library book status change is allowed.
func CanTransitionBook(from, to BookStatus) bool {
	return from == to || containsStatus(bookTransitions[from], to)
}

// CanTransitionComplaint reports whether a complaint status change is allowed.
func CanTransitionComplaint(from, to ComplaintStatus) bool {
	return from == to || containsStatus(complaintTransitions[from], to)
}

func containsStatus[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
