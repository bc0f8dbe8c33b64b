package services

// Services groups every service for dependency injection into controllers.
type Services struct {
	Auth      *AuthService
	Student   *StudentService
	Fee       *FeeService
	Hostel    *HostelService
	Library   *LibraryService
	Exam      *ExamService
	Faculty   *FacultyService
	Dashboard *DashboardService
}
