package util

import (
	"errors"
	"fmt"
)

// Error codes for the ticket flow. Every code except the internal one maps to
// a rejection the invoking user is expected to see.
const (
	CodeChannelUnavailable   = "CHANNEL_UNAVAILABLE"
	CodeGuardRejected        = "GUARD_REJECTED"
	CodeUnrecognizedCategory = "UNRECOGNIZED_CATEGORY"
	CodeNotAThread           = "NOT_A_THREAD"
	CodeAlreadyClosed        = "ALREADY_CLOSED"
	CodePermissionDenied     = "PERMISSION_DENIED"
	CodePlatformCallFailed   = "PLATFORM_CALL_FAILED"
)

// DomainError standardizes application errors. Message is the text shown to
// the invoking user; Err carries the underlying cause for logs.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Internal reports whether the error should be logged as a failure rather
// than an expected rejection.
func (e *DomainError) Internal() bool {
	return e.Code == CodePlatformCallFailed
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func NewChannelUnavailable() error {
	return NewDomainError(CodeChannelUnavailable, "Support channel not found or invalid.")
}

func NewGuardRejected() error {
	return NewDomainError(CodeGuardRejected, "You already have an open ticket! Close your last ticket to open another.")
}

func NewUnrecognizedCategory(value string) error {
	return &DomainError{
		Code:    CodeUnrecognizedCategory,
		Message: "Not recognized category.",
		Err:     fmt.Errorf("category value %q", value),
	}
}

func NewNotAThread() error {
	return NewDomainError(CodeNotAThread, "This button can only be used within a ticket thread.")
}

func NewAlreadyClosed() error {
	return NewDomainError(CodeAlreadyClosed, "This ticket is already closed.")
}

func NewPermissionDenied(message string) error {
	return NewDomainError(CodePermissionDenied, message)
}

func NewPlatformCallFailed(err error) error {
	return &DomainError{
		Code:    CodePlatformCallFailed,
		Message: "There was an error while executing this command!",
		Err:     err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if de, ok := NewPlatformCallFailed(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:    CodePlatformCallFailed,
		Message: "There was an error while executing this command!",
		Err:     err,
	}
}
