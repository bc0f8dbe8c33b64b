package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/middleware"
)

// LibraryController handles book loan operations
type LibraryController struct {
	libraryService *services.LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService *services.LibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// IssueBook records a book loan
// @Summary Issue a book
// @Description Records a book loan for a student with status issued
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IssueBookRequest true "Loan information"
// @Success 201 {object} dto.APIResponse{data=models.LibraryBook} "Book issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library [post]
func (c *LibraryController) IssueBook(ctx *gin.Context) {
	var req dto.IssueBookRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	book, err := c.libraryService.IssueBook(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(book, "Book issued successfully"))
}

// GetBooks lists all loan records
// @Summary List loan records
// @Description Retrieves all book loan records
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.LibraryBook} "Books retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library [get]
func (c *LibraryController) GetBooks(ctx *gin.Context) {
	books, err := c.libraryService.GetBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(books, "Books retrieved successfully"))
}

// GetBooksByStudent lists a student's loan records
// @Summary List loan records of a student
// @Description Retrieves the book loans of one student
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student record ID"
// @Success 200 {object} dto.APIResponse{data=[]models.LibraryBook} "Books retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/student/{studentId} [get]
func (c *LibraryController) GetBooksByStudent(ctx *gin.Context) {
	books, err := c.libraryService.GetBooksByStudent(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(books, "Books retrieved successfully"))
}

// UpdateBook applies a partial update
// @Summary Update loan record
// @Description Applies a partial update to a loan. Returning a book is terminal, an overdue book can still be returned
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan record ID"
// @Param request body dto.UpdateBookRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.LibraryBook} "Book updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Loan record not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /library/{id} [put]
func (c *LibraryController) UpdateBook(ctx *gin.Context) {
	var req dto.UpdateBookRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	book, err := c.libraryService.UpdateBook(ctx, ctx.Param("id"), req.Patch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(book, "Book updated successfully"))
}
