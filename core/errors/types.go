// ABOUTME: Custom error types for the core business logic
// ABOUTME: Covers lookup and validation failures plus the fetch/parse taxonomy of the pipeline

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError is a failure to obtain a usable payload for a URL.
// StatusCode is zero for transport failures (DNS, refused, timeout, TLS).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Transport reports whether the server was never reached
func (e *FetchError) Transport() bool {
	return e.StatusCode == 0
}

// ParseError is a payload that one strategy could not interpret
type ParseError struct {
	Strategy string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s strategy: %v", e.Strategy, e.Err)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyResultError is a parse that found neither items nor a usable body
type EmptyResultError struct {
	Strategy string
}

// Error implements the error interface
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s strategy: no items found", e.Strategy)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsTransport checks if an error is a FetchError that never reached the server
func IsTransport(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Transport()
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsEmptyResult checks if an error is an EmptyResultError
func IsEmptyResult(err error) bool {
	var emptyErr *EmptyResultError
	return errors.As(err, &emptyErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
