package storage

import (
	"context"

	"github.com/mertkaya/edumanage/internal/app/models"
)

// Storage is the single source of truth for all entity state. Create
// operations assign the record ID, creation timestamp and defaulted fields in
// place; lookups signal absence with apperrors.Err*NotFound sentinels rather
// than nil-without-error. Implementations must be safe for concurrent use:
// every mutation is a critical section.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser assigns a new ID and creation timestamp, defaults the role to
	// student when empty, and rejects duplicate usernames or emails.
	CreateUser(ctx context.Context, user *models.User) error

	// Students
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	GetStudentByUserID(ctx context.Context, userID string) (*models.Student, error)
	GetStudentByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	// GetStudents returns all students in insertion order.
	GetStudents(ctx context.Context) ([]*models.Student, error)
	// CreateStudent generates a unique student number, links the owning user
	// account and defaults the status to active.
	CreateStudent(ctx context.Context, student *models.Student, userID string) error
	// UpdateStudent merges the set fields of the patch into the stored record.
	UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error)

	// Fees
	GetFees(ctx context.Context) ([]*models.Fee, error)
	GetFeesByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error)
	// CreateFee defaults the status to completed and rejects negative amounts.
	CreateFee(ctx context.Context, fee *models.Fee) error
	UpdateFee(ctx context.Context, id string, patch models.FeePatch) (*models.Fee, error)
	// TotalFeesCollected sums amounts over fee records with status completed.
	TotalFeesCollected(ctx context.Context) (float64, error)

	// Hostels
	GetHostels(ctx context.Context) ([]*models.Hostel, error)
	GetHostelByStudentID(ctx context.Context, studentID string) (*models.Hostel, error)
	// CreateHostel defaults the status to allocated and rejects a second
	// active allocation for the same student.
	CreateHostel(ctx context.Context, hostel *models.Hostel) error
	UpdateHostel(ctx context.Context, id string, patch models.HostelPatch) (*models.Hostel, error)
	// HostelOccupancy reports the configured capacity and the count of
	// records with status allocated.
	HostelOccupancy(ctx context.Context) (models.HostelOccupancy, error)

	// Hostel complaints
	CreateComplaint(ctx context.Context, complaint *models.HostelComplaint) error
	GetComplaints(ctx context.Context) ([]*models.HostelComplaint, error)
	GetComplaintsByStudentID(ctx context.Context, studentID string) ([]*models.HostelComplaint, error)
	ResolveComplaint(ctx context.Context, id string, status models.ComplaintStatus, resolvedBy string) (*models.HostelComplaint, error)

	// Library
	GetLibraryBooks(ctx context.Context) ([]*models.LibraryBook, error)
	GetLibraryBooksByStudentID(ctx context.Context, studentID string) ([]*models.LibraryBook, error)
	// CreateLibraryBook defaults the status to issued.
	CreateLibraryBook(ctx context.Context, book *models.LibraryBook) error
	UpdateLibraryBook(ctx context.Context, id string, patch models.LibraryBookPatch) (*models.LibraryBook, error)
	// BooksIssuedToday counts records whose issue date equals the current
	// calendar date (date-only comparison).
	BooksIssuedToday(ctx context.Context) (int, error)

	// Exams
	GetExams(ctx context.Context) ([]*models.Exam, error)
	GetExamsByStudentID(ctx context.Context, studentID string) ([]*models.Exam, error)
	// CreateExam defaults total marks to 100 and rejects marks outside
	// [0, totalMarks].
	CreateExam(ctx context.Context, exam *models.Exam) error
	// AverageExamPerformance groups exams by subject and averages
	// marks/totalMarks*100 per group, ordered by first-seen subject.
	AverageExamPerformance(ctx context.Context) ([]models.SubjectAverage, error)

	// Faculty
	GetFacultyByUserID(ctx context.Context, userID string) (*models.Faculty, error)
	GetFaculties(ctx context.Context) ([]*models.Faculty, error)
	CreateFaculty(ctx context.Context, faculty *models.Faculty) error
	GetCoursesByFacultyID(ctx context.Context, facultyID string) ([]*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	// CreateAttendance records a batch of attendance marks atomically.
	CreateAttendance(ctx context.Context, records []*models.Attendance) error
	GetAttendanceReport(ctx context.Context, courseID, from, to string) ([]*models.Attendance, error)
}
