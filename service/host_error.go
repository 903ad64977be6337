package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a module, override or route is absent.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrUpstreamUnavailable means that the module storage or a remote entry could not be reached.
	ErrUpstreamUnavailable = "upstream_unavailable"
)

// HostError represents an error within the context of the module host.
type HostError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewHostError creates a new HostError.
func NewHostError(code string, message string, inner error) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *HostError {
	if hostInner := ToHostError(inner); hostInner != nil {
		return hostInner
	}

	return NewHostError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *HostError {
	if hostInner := ToHostError(inner); hostInner != nil {
		return hostInner
	}

	return NewHostError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *HostError {
	if hostInner := ToHostError(inner); hostInner != nil {
		return hostInner
	}

	return NewHostError(ErrBadParameter, message, inner)
}

func NewUpstreamUnavailableError(message string, inner error) *HostError {
	if hostInner := ToHostError(inner); hostInner != nil {
		return hostInner
	}

	return NewHostError(ErrUpstreamUnavailable, message, inner)
}

func (e HostError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e HostError) Unwrap() error {
	return e.Inner
}

// ToHostError returns a pointer to a host error, or nil if it is not a host error.
func ToHostError(err error) *HostError {
	var e *HostError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToHostErrorCode returns the code of the error, if available.
func ToHostErrorCode(err error) string {
	if hostErr := ToHostError(err); hostErr != nil {
		return hostErr.Code
	}
	return ""
}

func IsHostError(err error, code string) bool {
	if hostErr := ToHostError(err); hostErr != nil {
		return hostErr.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsHostError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsHostError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsHostError(err, ErrBadParameter)
}

func IsUpstreamUnavailableError(err error) bool {
	return IsHostError(err, ErrUpstreamUnavailable)
}
