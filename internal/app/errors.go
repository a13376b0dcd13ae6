package app

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknownTemplate is returned by dry-run resolution. Applying an unknown
// template to a live document is a silent no-op instead.
var ErrUnknownTemplate = errors.New("unknown template")

type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func validationError(message string, details any) *DomainError {
	return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, details)
}
