package services

import "fmt"

// Domain failures carry a type, not an HTTP status; controllers decide
// the wire representation. Store errors outside this taxonomy surface as
// a generic internal error and are never echoed verbatim.

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PolicyViolationError marks a business-rule rejection, e.g. a check-in
// without a qualifying subscription.
type PolicyViolationError struct {
	Message string
}

func (e *PolicyViolationError) Error() string {
	return e.Message
}

type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload exceeds %d bytes", e.Limit)
}
