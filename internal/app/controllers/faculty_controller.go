package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// FacultyController handles faculty profile, course and attendance operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateProfile creates a faculty profile
// @Summary Create a faculty profile
// @Description Creates a faculty profile linked to a staff user account
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Profile created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Employee ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [post]
func (c *FacultyController) CreateProfile(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.CreateProfile(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(faculty, "Profile created successfully"))
}

// GetProfiles lists all faculty profiles
// @Summary List faculty profiles
// @Description Retrieves all faculty profiles
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Profiles retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) GetProfiles(ctx *gin.Context) {
	faculties, err := c.facultyService.GetProfiles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculties, "Profiles retrieved successfully"))
}

// GetOwnProfile returns the acting user's faculty profile
// @Summary Get own faculty profile
// @Description Retrieves the faculty profile of the authenticated user
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/me [get]
func (c *FacultyController) GetOwnProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	faculty, err := c.facultyService.GetProfileByUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty, "Profile retrieved successfully"))
}

// CreateCourse registers a course
// @Summary Register a course
// @Description Registers a course taught by the authenticated faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/courses [post]
func (c *FacultyController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	course, err := c.facultyService.CreateCourse(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course, "Course registered successfully"))
}

// GetCourses lists the acting faculty member's courses
// @Summary List own courses
// @Description Retrieves the courses taught by the authenticated faculty member
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/courses [get]
func (c *FacultyController) GetCourses(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	courses, err := c.facultyService.GetCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// MarkAttendance stores a batch of attendance marks
// @Summary Mark attendance
// @Description Stores attendance marks for one course and date in a single batch
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance batch"
// @Success 201 {object} dto.APIResponse{data=[]models.Attendance} "Attendance recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Faculty or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/attendance [post]
func (c *FacultyController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	records, err := c.facultyService.MarkAttendance(ctx, userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(records, "Attendance recorded successfully"))
}

// GetAttendanceReport returns attendance for a course
// @Summary Attendance report
// @Description Returns attendance marks for a course within an optional date range
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Report retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/attendance/{courseId} [get]
func (c *FacultyController) GetAttendanceReport(ctx *gin.Context) {
	report, err := c.facultyService.GetAttendanceReport(ctx,
		ctx.Param("courseId"), ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report, "Report retrieved successfully"))
}
