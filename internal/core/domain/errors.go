package domain

import (
	"fmt"
	"net/http"

	"go.trai.ch/zerr"
)

var (
	// ErrTransport marks every failure raised by the HTTP transport.
	// TransportError values match it with errors.Is.
	ErrTransport = zerr.New("transport request failed")

	// ErrValidation marks every local validation failure.
	// ValidationError values match it with errors.Is.
	ErrValidation = zerr.New("validation failed")

	// ErrInvalidDocument is the reason of a ValidationError raised for a
	// definition document that does not parse.
	ErrInvalidDocument = zerr.New("Invalid document syntax")

	// ErrInvalidTimeRange is returned when a time range starts after it ends.
	ErrInvalidTimeRange = zerr.New("time range starts after it ends")

	// ErrEmptyRequestKey is returned when a query is registered without a key.
	ErrEmptyRequestKey = zerr.New("request key is empty")

	// ErrNoProducer is returned when a key is read before any producer was registered for it.
	ErrNoProducer = zerr.New("no producer registered for key")

	// ErrDecodeFailed is returned when a response body is not valid JSON.
	ErrDecodeFailed = zerr.New("failed to decode response body")

	// ErrUnexpectedPayload is returned when a decoded response has the wrong shape.
	ErrUnexpectedPayload = zerr.New("unexpected response payload")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

// ValidationError reports input that failed a local structural check.
// It is always raised before any network call and is never retried.
type ValidationError struct {
	Message string
	// Reason is an optional sentinel that errors.Is also matches.
	Reason error
	Err    error
}

// NewValidationError creates a ValidationError with the given message and cause.
func NewValidationError(message string, cause error) *ValidationError {
	return &ValidationError{Message: message, Err: cause}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// NewInvalidDocumentError creates the ValidationError for a definition
// document that does not parse.
func NewInvalidDocumentError(cause error) *ValidationError {
	return &ValidationError{Message: ErrInvalidDocument.Error(), Reason: ErrInvalidDocument, Err: cause}
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrValidation) match any ValidationError, and
// errors.Is(err, e.Reason) match when a reason is set.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || (e.Reason != nil && target == e.Reason)
}

// TransportError reports a network failure, a timeout or a non-2xx response.
// StatusCode is zero when no response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	var msg string
	if e.StatusCode == 0 {
		msg = fmt.Sprintf("%s %s: request failed", e.Method, e.Path)
	} else {
		msg = fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTransport) match any TransportError.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// IsServerError reports whether the backend answered with HTTP 500.
func (e *TransportError) IsServerError() bool {
	return e.StatusCode == http.StatusInternalServerError
}
