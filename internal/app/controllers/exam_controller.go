package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// ExamController handles exam result operations
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// RecordResult stores an exam result
// @Summary Record an exam result
// @Description Stores an exam result. Total marks default to 100
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExamRequest true "Exam result"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Result recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or marks out of range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [post]
func (c *ExamController) RecordResult(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.RecordResult(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam, "Result recorded successfully"))
}

// GetResults lists all exam records
// @Summary List exam results
// @Description Retrieves all exam records
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Results retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams [get]
func (c *ExamController) GetResults(ctx *gin.Context) {
	exams, err := c.examService.GetResults(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams, "Results retrieved successfully"))
}

// GetResultsByStudent lists a student's exam records
// @Summary List exam results of a student
// @Description Retrieves the exam records of one student
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Results retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/student/{studentId} [get]
func (c *ExamController) GetResultsByStudent(ctx *gin.Context) {
	exams, err := c.examService.GetResultsByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams, "Results retrieved successfully"))
}

// GetAveragePerformance returns per-subject averages
// @Summary Average exam performance
// @Description Returns the average percentage per subject across all exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SubjectAverage} "Performance retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/performance [get]
func (c *ExamController) GetAveragePerformance(ctx *gin.Context) {
	performance, err := c.examService.GetAveragePerformance(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(performance, "Performance retrieved successfully"))
}
