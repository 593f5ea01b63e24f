package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// IsValidationError reports whether err is one of the domain validation
// sentinels. The API layer uses this to map entity validation failures to
// 400 responses without enumerating every sentinel itself.
func IsValidationError(err error) bool {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidID) {
		return true
	}
	for _, sentinel := range []error{
		ErrEmptyUserID, ErrEmptyUsername, ErrUsernameTooShort, ErrUsernameTooLong,
		ErrPasswordTooShort, ErrPasswordTooLong, ErrEmptyPassword, ErrEmptyHashedPassword,
		ErrEmptyTaskID, ErrEmptyTaskOwnerID, ErrTitleTooShort, ErrTitleTooLong,
		ErrInvalidTaskStatus, ErrInvalidPriority,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// ValidationError carries the field that failed validation alongside the
// underlying sentinel error, so the API layer can build a useful message
// without inspecting error strings.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
