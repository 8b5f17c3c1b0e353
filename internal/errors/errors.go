package errors

import "fmt"

// ErrorCode represents a service error code.
type ErrorCode string

const (
	ErrInvalidInput        ErrorCode = "INVALID_INPUT"        // 400
	ErrUnparseableQuery    ErrorCode = "UNPARSEABLE_QUERY"    // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrDuplicateValue      ErrorCode = "DUPLICATE_VALUE"      // 409
	ErrConflictingCriteria ErrorCode = "CONFLICTING_CRITERIA" // 422
	ErrPersistenceFailure  ErrorCode = "PERSISTENCE_FAILURE"  // 500
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// ServiceError represents a structured error with code, status, and details.
type ServiceError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInput creates a 400 error for invalid request input.
func NewInvalidInput(msg string) *ServiceError {
	return &ServiceError{
		Code:    ErrInvalidInput,
		Status:  400,
		Message: msg,
	}
}

// NewUnparseableQuery creates a 400 error for natural-language queries
// that match none of the recognized phrases.
func NewUnparseableQuery(query string) *ServiceError {
	return &ServiceError{
		Code:    ErrUnparseableQuery,
		Status:  400,
		Message: fmt.Sprintf("unable to parse natural language query: %q", query),
		Details: map[string]any{"query": query},
	}
}

// NewNotFound creates a 404 error for when a string cannot be found.
func NewNotFound(value string) *ServiceError {
	return &ServiceError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("string not found: %s", value),
		Details: map[string]any{"value": value},
	}
}

// NewDuplicateValue creates a 409 error for value collisions.
func NewDuplicateValue(value string) *ServiceError {
	return &ServiceError{
		Code:    ErrDuplicateValue,
		Status:  409,
		Message: fmt.Sprintf("string %q already exists", value),
		Details: map[string]any{"value": value},
	}
}

// NewConflictingCriteria creates a 422 error for structurally valid but
// semantically contradictory filter criteria.
func NewConflictingCriteria(msg string) *ServiceError {
	return &ServiceError{
		Code:    ErrConflictingCriteria,
		Status:  422,
		Message: msg,
	}
}

// NewPersistenceFailure creates a 500 error for an unreadable or unwritable store.
func NewPersistenceFailure(err error) *ServiceError {
	msg := "persistence failure"
	if err != nil {
		msg = fmt.Sprintf("persistence failure: %v", err)
	}
	return &ServiceError{
		Code:    ErrPersistenceFailure,
		Status:  500,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ServiceError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ServiceError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ServiceError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*ServiceError); ok {
		return sErr.Code == code
	}
	return false
}
