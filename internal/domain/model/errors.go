package model

import "fmt"

// RejectionReason identifies why an uploaded image was rejected.
type RejectionReason string

const (
	// RejectTooLarge indicates the upload exceeded the byte-size limit.
	RejectTooLarge RejectionReason = "too_large"
	// RejectDimensionsExceeded indicates the decoded image exceeded the
	// pixel dimension limit.
	RejectDimensionsExceeded RejectionReason = "dimensions_exceeded"
	// RejectUndecodable indicates the bytes could not be decoded as an image.
	RejectUndecodable RejectionReason = "undecodable"
)

// ValidationError is a user-correctable input error. It is always
// recovered locally and never fatal.
type ValidationError struct {
	Field   string
	Reason  string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

// PreconditionViolation is returned when a state transition is requested
// that the current state does not permit, such as enabling team-logo
// placement with no team logo present.
type PreconditionViolation struct {
	Op     string
	Detail string
}

// Error returns the error message for PreconditionViolation.
func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// NewPreconditionViolation creates a PreconditionViolation for the
// given operation.
func NewPreconditionViolation(op, detail string) *PreconditionViolation {
	return &PreconditionViolation{Op: op, Detail: detail}
}
