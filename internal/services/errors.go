package services

import "errors"

// ErrorCode classifies service failures so the transport layer can map
// them to statuses without string matching.
type ErrorCode string

const (
	ErrorInvalid      ErrorCode = "invalid"
	ErrorForbidden    ErrorCode = "forbidden"
	ErrorNotFound     ErrorCode = "not_found"
	ErrorConflict     ErrorCode = "conflict"
	ErrorUnauthorized ErrorCode = "unauthorized"
)

// ServiceError is the error type every service operation returns on a
// caller-visible failure.
type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewInvalidError(msg string) *ServiceError {
	return &ServiceError{Code: ErrorInvalid, Message: msg}
}

func NewForbiddenError(msg string) *ServiceError {
	return &ServiceError{Code: ErrorForbidden, Message: msg}
}

func NewNotFoundError(msg string) *ServiceError {
	return &ServiceError{Code: ErrorNotFound, Message: msg}
}

func NewConflictError(msg string) *ServiceError {
	return &ServiceError{Code: ErrorConflict, Message: msg}
}

func NewUnauthorizedError(msg string) *ServiceError {
	return &ServiceError{Code: ErrorUnauthorized, Message: msg}
}

// AsServiceError unwraps err into a ServiceError when possible.
func AsServiceError(err error) (*ServiceError, bool) {
	if err == nil {
		return nil, false
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
