package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Classroom errors
var (
	ErrClassroomNotFound = errors.New("classroom not found")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Attendance errors
var (
	ErrAttendanceNotFound        = errors.New("attendance not found")
	ErrAttendanceStudentNotFound = errors.New("attendance record not found")
	ErrDuplicateAttendanceEntry  = errors.New("student already has a status for this attendance")
	ErrInvalidAttendanceStatus   = errors.New("invalid attendance status")
)

// Assessment errors
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrScoreNotFound      = errors.New("score not found")
	ErrDuplicateScore     = errors.New("student already has a score for this assessment")
)

// Activity errors
var (
	ErrActivityNotFound = errors.New("activity not found")
)

// Schedule errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// CustomError wraps a sentinel error with a human-readable message.
type CustomError struct {
	Err     error
	Message string
}

// Error returns the custom message
func (e *CustomError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel error
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
