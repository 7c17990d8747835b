package apperrors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrOverlap = errors.New("booking time overlaps an existing booking for this room")

	ErrInvalidID = errors.New("invalid id, must be a positive integer")

	ErrInvalidTimeRange = errors.New("end time must be after start time")

	ErrUnauthenticated = errors.New("missing or invalid session")
)

// FieldError describes a single failed validation rule so the caller can
// point at the offending field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 1 {
		return "validation failed on field " + e.Details[0].Field
	}
	return "validation failed"
}

func NewValidationError(details ...FieldError) *ValidationError {
	return &ValidationError{Details: details}
}
