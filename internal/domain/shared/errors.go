package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// NotFoundError reports a catalog lookup miss.
// Kind distinguishes the catalog category ("flavor" or "topping").
type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s %q not found", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
