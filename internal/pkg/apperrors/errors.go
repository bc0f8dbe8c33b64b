package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidRole           = errors.New("invalid role")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Fee errors
var (
	ErrFeeNotFound    = errors.New("fee record not found")
	ErrNegativeAmount = errors.New("fee amount cannot be negative")
)

// Hostel errors
var (
	ErrHostelNotFound         = errors.New("hostel record not found")
	ErrHostelAlreadyAllocated = errors.New("student already has an active hostel allocation")
	ErrComplaintNotFound      = errors.New("hostel complaint not found")
)

// Library errors
var (
	ErrBookNotFound              = errors.New("library book record not found")
	ErrReturnDateWithoutReturn   = errors.New("return date may only be set when the book is returned")
)

// Exam errors
var (
	ErrExamNotFound    = errors.New("exam record not found")
	ErrMarksOutOfRange = errors.New("marks must be between 0 and total marks")
)

// Faculty errors
var (
	ErrFacultyNotFound        = errors.New("faculty not found")
	ErrEmployeeIDAlreadyExists = errors.New("employee ID already exists")
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseCodeAlreadyExists = errors.New("course code already exists")
)

// Status machine errors
var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidStatus           = errors.New("invalid status value")
)
