package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mertkaya/edumanage/internal/app/models/dto"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
	"github.com/mertkaya/edumanage/internal/pkg/validation"
)

// RegisterCustomValidators installs binding tags used by the request DTOs.
// The dateformat tag accepts calendar dates in the YYYY-MM-DD layout and
// roomnumber accepts block-letter room identifiers such as B-204.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
			return helpers.IsValidDate(fl.Field().String())
		})
		_ = v.RegisterValidation("roomnumber", func(fl validator.FieldLevel) bool {
			return validation.CompiledPatterns.RoomNumber.MatchString(fl.Field().String())
		})
	}
}

// BindJSON binds and validates a JSON request body, writing the standard
// validation error response on failure. Returns false when binding failed.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			details := dto.NewValidationErrors()
			for _, e := range validationErrs {
				details.AddError(e.Field(), formatValidationError(e))
			}
			errorDetail = errorDetail.WithDetails(details.Errors)
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "dateformat":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "roomnumber":
		return e.Field() + " must be a room number such as B-204"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
