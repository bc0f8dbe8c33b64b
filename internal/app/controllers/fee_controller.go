package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// FeeController handles fee payment operations
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// RecordPayment records a fee payment
// @Summary Record a fee payment
// @Description Stores a fee payment for a student and generates a receipt for completed payments
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.RecordPayment(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee, "Payment recorded successfully"))
}

// GetFees lists all fee records
// @Summary List fee records
// @Description Retrieves all fee payment records
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [get]
func (c *FeeController) GetFees(ctx *gin.Context) {
	fees, err := c.feeService.GetFees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees, "Fees retrieved successfully"))
}

// GetFeesByStudent lists a student's fee records
// @Summary List fee records of a student
// @Description Retrieves the fee payment records of one student
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/student/{studentId} [get]
func (c *FeeController) GetFeesByStudent(ctx *gin.Context) {
	fees, err := c.feeService.GetFeesByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees, "Fees retrieved successfully"))
}

// UpdateFee applies a partial update
// @Summary Update fee record
// @Description Applies a partial update to a fee record. A pending fee can move to completed or failed
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee record ID"
// @Param request body dto.UpdateFeeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Fee record not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	var req dto.UpdateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.UpdateFee(ctx, ctx.Param("id"), req.Patch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee, "Fee updated successfully"))
}

// GetFeeSummary aggregates fee counters
// @Summary Fee summary
// @Description Returns paid/pending counts and the total collected amount
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeeSummaryResponse} "Summary retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/summary [get]
func (c *FeeController) GetFeeSummary(ctx *gin.Context) {
	summary, err := c.feeService.GetFeeSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary, "Summary retrieved successfully"))
}
