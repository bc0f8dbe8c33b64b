package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/controllers"
	"github.com/mertkaya/edumanage/internal/app/models"
	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// Controllers groups every controller needed to build the route table.
type Controllers struct {
	Auth      *controllers.AuthController
	Student   *controllers.StudentController
	Fee       *controllers.FeeController
	Hostel    *controllers.HostelController
	Library   *controllers.LibraryController
	Exam      *controllers.ExamController
	Faculty   *controllers.FacultyController
	Dashboard *controllers.DashboardController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	staffRoles := []string{string(models.RoleAdmin), string(models.RoleStaff)}

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrl.Auth.GetProfile)

		// Student records: any authenticated user can read, staff manages
		students := authenticated.Group("/students")
		{
			students.GET("", ctrl.Student.GetStudents)
			students.GET("/:id", ctrl.Student.GetStudent)

			studentsStaffProtected := students.Group("")
			studentsStaffProtected.Use(authMiddleware.RoleRequired(staffRoles...))
			{
				studentsStaffProtected.POST("", ctrl.Student.CreateStudent)
				studentsStaffProtected.PUT("/:id", ctrl.Student.UpdateStudent)
			}
		}

		// Fee payments
		fees := authenticated.Group("/fees")
		{
			fees.GET("/student/:studentId", ctrl.Fee.GetFeesByStudent)

			feesStaffProtected := fees.Group("")
			feesStaffProtected.Use(authMiddleware.RoleRequired(staffRoles...))
			{
				feesStaffProtected.POST("/payments", ctrl.Fee.RecordPayment)
				feesStaffProtected.GET("", ctrl.Fee.GetFees)
				feesStaffProtected.GET("/summary", ctrl.Fee.GetFeeSummary)
				feesStaffProtected.PUT("/:id", ctrl.Fee.UpdateFee)
			}
		}

		// Hostel allocations and complaints
		hostels := authenticated.Group("/hostels")
		{
			hostels.GET("/student/:studentId", ctrl.Hostel.GetAllocationByStudent)
			hostels.GET("/occupancy", ctrl.Hostel.GetOccupancy)
			hostels.POST("/complaints", ctrl.Hostel.FileComplaint)
			hostels.GET("/complaints", ctrl.Hostel.GetComplaints)

			hostelsStaffProtected := hostels.Group("")
			hostelsStaffProtected.Use(authMiddleware.RoleRequired(staffRoles...))
			{
				hostelsStaffProtected.POST("", ctrl.Hostel.AllocateRoom)
				hostelsStaffProtected.GET("", ctrl.Hostel.GetAllocations)
				hostelsStaffProtected.PUT("/:id", ctrl.Hostel.UpdateAllocation)
				hostelsStaffProtected.PUT("/complaints/:id", ctrl.Hostel.ResolveComplaint)
			}
		}

		// Library loans
		library := authenticated.Group("/library")
		{
			library.GET("/student/:studentId", ctrl.Library.GetBooksByStudent)

			libraryStaffProtected := library.Group("")
			libraryStaffProtected.Use(authMiddleware.RoleRequired(staffRoles...))
			{
				libraryStaffProtected.POST("", ctrl.Library.IssueBook)
				libraryStaffProtected.GET("", ctrl.Library.GetBooks)
				libraryStaffProtected.PUT("/:id", ctrl.Library.UpdateBook)
			}
		}

		// Exam records
		exams := authenticated.Group("/exams")
		{
			exams.GET("/student/:studentId", ctrl.Exam.GetResultsByStudent)
			exams.GET("/performance", ctrl.Exam.GetAveragePerformance)

			examsStaffProtected := exams.Group("")
			examsStaffProtected.Use(authMiddleware.RoleRequired(staffRoles...))
			{
				examsStaffProtected.POST("", ctrl.Exam.RecordResult)
				examsStaffProtected.GET("", ctrl.Exam.GetResults)
			}
		}

		// Faculty profiles, courses and attendance (staff only)
		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(staffRoles...))
		{
			faculty.POST("", ctrl.Faculty.CreateProfile)
			faculty.GET("", ctrl.Faculty.GetProfiles)
			faculty.GET("/me", ctrl.Faculty.GetOwnProfile)
			faculty.POST("/courses", ctrl.Faculty.CreateCourse)
			faculty.GET("/courses", ctrl.Faculty.GetCourses)
			faculty.POST("/attendance", ctrl.Faculty.MarkAttendance)
			faculty.GET("/attendance/:courseId", ctrl.Faculty.GetAttendanceReport)
		}

		// Administrative dashboard (staff only)
		dashboard := authenticated.Group("/dashboard")
		dashboard.Use(authMiddleware.RoleRequired(staffRoles...))
		{
			dashboard.GET("", ctrl.Dashboard.GetStats)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Data:    gin.H{"status": "ok"},
		})
	})
}
