package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Storage errors
	ErrStorage = errors.New("storage failure")
)

// Course errors
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseCodeExists   = errors.New("course with this code already exists")
	ErrCourseHasReviews   = errors.New("cannot delete course with existing reviews")
	ErrCourseCodeRequired = errors.New("course_code, course_name and department are required")
)

// Professor errors
var (
	ErrProfessorNotFound     = errors.New("professor not found")
	ErrProfessorNameRequired = errors.New("professor name is required")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserNotAlumni       = errors.New("user is not an alumni")
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrMicrosoftIDRequired = errors.New("microsoft identity is required")
)

// Review errors
var (
	ErrReviewCourseRequired = errors.New("review must reference a course")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")
	ErrDifficultyOutOfRange = errors.New("difficulty must be between 1 and 5")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a caller-fault error for missing or invalid input
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates an error for operations that would violate a
// business invariant
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewStorageError wraps an unexpected storage engine fault, keeping the
// original message reachable through Unwrap
func NewStorageError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrStorage, err),
		Message: message,
	}
}
