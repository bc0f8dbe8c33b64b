package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mertkaya/edumanage/internal/app/models"
)

// DefaultHostelCapacity matches the capacity the dashboard reported before it
// became configurable.
const DefaultHostelCapacity = 275

// Store is the in-memory Storage implementation. It stands in for a real
// database: entity maps keyed by ID plus per-entity insertion-order lists.
// A single RWMutex serializes mutations; reads copy records out so callers
// can never mutate store state behind the API.
type Store struct {
	mu sync.RWMutex

	users      map[string]*models.User
	students   map[string]*models.Student
	fees       map[string]*models.Fee
	hostels    map[string]*models.Hostel
	books      map[string]*models.LibraryBook
	exams      map[string]*models.Exam
	faculty    map[string]*models.Faculty
	courses    map[string]*models.Course
	attendance map[string]*models.Attendance
	complaints map[string]*models.HostelComplaint

	userOrder       []string
	studentOrder    []string
	feeOrder        []string
	hostelOrder     []string
	bookOrder       []string
	examOrder       []string
	facultyOrder    []string
	courseOrder     []string
	attendanceOrder []string
	complaintOrder  []string

	hostelCapacity int

	// studentSeq backs student number generation. It only moves forward, so
	// numbers stay unique even when students are created within the same
	// millisecond.
	studentSeq int64

	// nowFunc is swapped out in tests
	nowFunc func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithHostelCapacity overrides the configured hostel capacity.
func WithHostelCapacity(capacity int) Option {
	return func(s *Store) {
		if capacity > 0 {
			s.hostelCapacity = capacity
		}
	}
}

// WithClock overrides the store's clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.nowFunc = now
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		users:      make(map[string]*models.User),
		students:   make(map[string]*models.Student),
		fees:       make(map[string]*models.Fee),
		hostels:    make(map[string]*models.Hostel),
		books:      make(map[string]*models.LibraryBook),
		exams:      make(map[string]*models.Exam),
		faculty:    make(map[string]*models.Faculty),
		courses:    make(map[string]*models.Course),
		attendance: make(map[string]*models.Attendance),
		complaints: make(map[string]*models.HostelComplaint),

		hostelCapacity: DefaultHostelCapacity,
		nowFunc:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newID generates an opaque unique record identifier.
func newID() string {
	return uuid.NewString()
}

// nextStudentNumber generates a unique student number. Seeded from wall-clock
// milliseconds so numbers look like the historical STU<millis> tokens, but
// strictly increasing so rapid creation never collides. Callers must hold the
// write lock.
func (s *Store) nextStudentNumber() string {
	candidate := s.nowFunc().UnixMilli()
	if candidate <= s.studentSeq {
		candidate = s.studentSeq + 1
	}
	s.studentSeq = candidate
	return fmt.Sprintf("STU%d", candidate)
}
