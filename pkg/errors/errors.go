// Package errors provides custom error types for fedcal.
// The types let callers tell bad input apart from corrupt source data
// with errors.Is and errors.As, and carry enough context to debug a
// failed build or query.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for fedcal
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataIntegrity indicates that the historical source data contradicts itself
	ErrDataIntegrity = errors.New("data integrity violation")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConversionError reports a date value the normalizer cannot convert.
type ConversionError struct {
	Value   any
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %T(%v) to a day offset: %s", e.Value, e.Value, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConversionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConversionError creates a new ConversionError
func NewConversionError(value any, message string, err error) *ConversionError {
	return &ConversionError{Value: value, Message: message, Err: err}
}

// IntegrityError reports two exception intervals that assign different
// statuses to the same department on the same day, or a source entry that
// cannot be stored as an interval.
type IntegrityError struct {
	Department string
	Day        string
	Statuses   []string
	Message    string
}

// Error implements the error interface
func (e *IntegrityError) Error() string {
	if e.Department != "" {
		return fmt.Sprintf("data integrity violation for %s on %s: %s %v", e.Department, e.Day, e.Message, e.Statuses)
	}
	return fmt.Sprintf("data integrity violation: %s", e.Message)
}

// Is implements errors.Is support
func (e *IntegrityError) Is(target error) bool {
	return target == ErrDataIntegrity
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(department, day, message string, statuses ...string) *IntegrityError {
	return &IntegrityError{
		Department: department,
		Day:        day,
		Statuses:   statuses,
		Message:    message,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing a source table
type ParseError struct {
	Format  string // "yaml", "json"
	File    string
	Entry   int // zero-based entry index, -1 when not tied to an entry
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Entry >= 0 {
		return fmt.Sprintf("parse error in %s file %s entry %d: %s", e.Format, e.File, e.Entry, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, entry int, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Entry:   entry,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "walk"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "build", "load", "resolve"
	Resource  string // "status tree", "source table", "client"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if an error was caused by bad caller input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDataIntegrity checks if an error reports contradictory source data
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError not tied to a single entry
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, -1, err.Error(), err)
}
