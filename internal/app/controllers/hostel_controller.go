package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// HostelController handles hostel allocation and complaint operations
type HostelController struct {
	hostelService *services.HostelService
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService *services.HostelService) *HostelController {
	return &HostelController{
		hostelService: hostelService,
	}
}

// AllocateRoom creates a hostel allocation
// @Summary Allocate a hostel room
// @Description Allocates a room to a student. A student can hold at most one active allocation
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHostelRequest true "Allocation information"
// @Success 201 {object} dto.APIResponse{data=models.Hostel} "Room allocated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already has an active allocation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels [post]
func (c *HostelController) AllocateRoom(ctx *gin.Context) {
	var req dto.CreateHostelRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	hostel, err := c.hostelService.AllocateRoom(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(hostel, "Room allocated successfully"))
}

// GetAllocations lists all hostel allocations
// @Summary List hostel allocations
// @Description Retrieves all hostel allocation records
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Hostel} "Allocations retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels [get]
func (c *HostelController) GetAllocations(ctx *gin.Context) {
	hostels, err := c.hostelService.GetAllocations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostels, "Allocations retrieved successfully"))
}

// GetAllocationByStudent returns a student's hostel record
// @Summary Get a student's allocation
// @Description Retrieves the hostel record of one student, preferring an active allocation
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Allocation retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Hostel record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/student/{studentId} [get]
func (c *HostelController) GetAllocationByStudent(ctx *gin.Context) {
	hostel, err := c.hostelService.GetAllocationByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostel, "Allocation retrieved successfully"))
}

// UpdateAllocation applies a partial update
// @Summary Update hostel allocation
// @Description Applies a partial update to an allocation. Vacating is one-way
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hostel record ID"
// @Param request body dto.UpdateHostelRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Hostel} "Allocation updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Hostel record not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/{id} [put]
func (c *HostelController) UpdateAllocation(ctx *gin.Context) {
	var req dto.UpdateHostelRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	hostel, err := c.hostelService.UpdateAllocation(ctx, ctx.Param("id"), req.Patch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(hostel, "Allocation updated successfully"))
}

// GetOccupancy reports hostel occupancy
// @Summary Hostel occupancy
// @Description Returns the configured capacity and the number of active allocations
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.HostelOccupancy} "Occupancy retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/occupancy [get]
func (c *HostelController) GetOccupancy(ctx *gin.Context) {
	occupancy, err := c.hostelService.GetOccupancy(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(occupancy, "Occupancy retrieved successfully"))
}

// FileComplaint records a hostel complaint
// @Summary File a hostel complaint
// @Description Records a complaint for a student with status pending
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint information"
// @Success 201 {object} dto.APIResponse{data=models.HostelComplaint} "Complaint filed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/complaints [post]
func (c *HostelController) FileComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.hostelService.FileComplaint(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(complaint, "Complaint filed successfully"))
}

// GetComplaints lists hostel complaints
// @Summary List hostel complaints
// @Description Retrieves all hostel complaints, optionally filtered by student
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param studentId query string false "Filter by student record ID"
// @Success 200 {object} dto.APIResponse{data=[]models.HostelComplaint} "Complaints retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/complaints [get]
func (c *HostelController) GetComplaints(ctx *gin.Context) {
	var (
		complaints interface{}
		err        error
	)

	if studentID := ctx.Query("studentId"); studentID != "" {
		complaints, err = c.hostelService.GetComplaintsByStudent(ctx, studentID)
	} else {
		complaints, err = c.hostelService.GetComplaints(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaints, "Complaints retrieved successfully"))
}

// ResolveComplaint advances a complaint's workflow
// @Summary Resolve a hostel complaint
// @Description Moves a complaint through pending, in_progress and resolved
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body dto.ResolveComplaintRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.HostelComplaint} "Complaint updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /hostels/complaints/{id} [put]
func (c *HostelController) ResolveComplaint(ctx *gin.Context) {
	var req dto.ResolveComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resolvedBy := ctx.GetString(middleware.ContextUserID)
	complaint, err := c.hostelService.ResolveComplaint(ctx, ctx.Param("id"), req.Status, resolvedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaint, "Complaint updated successfully"))
}
