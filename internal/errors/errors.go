// Package errors provides custom error types and utilities for filebridge.
//
// This package provides error handling for various operations including:
// - Configuration errors (invalid format or encoding options)
// - Input resolution errors
// - Transport and parse errors
// - Download errors
// - The uniform operation-boundary wrapper
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"filebridge/internal/domain"
)

// Error categories for filebridge operations
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrNotFound         = errors.New("resource not found")
	ErrParse            = errors.New("parse error")
	ErrUnsupportedData  = errors.New("unsupported data type")
	ErrEnvironment      = errors.New("unsupported environment")
	ErrDownload         = errors.New("download error")
)

// ConfigurationError represents an invalid option detected before any I/O.
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrConfiguration)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// NewInvalidFormatError creates a configuration error for an unrecognized
// format tag, enumerating every supported format.
func NewInvalidFormatError(format domain.Format) *ConfigurationError {
	return NewConfigurationError(
		"format",
		string(format),
		fmt.Sprintf("unsupported format %q, expected one of: %s", format, domain.SupportedFormatsString()),
		nil,
	)
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// UnsupportedInputError represents a read input that is neither a locator
// string nor a blob-like object.
type UnsupportedInputError struct {
	Input any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("Unsupported input type: %T", e.Input)
}

func (e *UnsupportedInputError) Is(target error) bool {
	return errors.Is(target, ErrUnsupportedInput)
}

// NewUnsupportedInputError creates a new unsupported-input error
func NewUnsupportedInputError(input any) *UnsupportedInputError {
	return &UnsupportedInputError{Input: input}
}

// UnsupportedDataError represents a write payload with no known byte
// normalization.
type UnsupportedDataError struct {
	Data any
}

func (e *UnsupportedDataError) Error() string {
	return fmt.Sprintf("Unsupported data type: %T", e.Data)
}

func (e *UnsupportedDataError) Is(target error) bool {
	return errors.Is(target, ErrUnsupportedData)
}

// NewUnsupportedDataError creates a new unsupported-data error
func NewUnsupportedDataError(data any) *UnsupportedDataError {
	return &UnsupportedDataError{Data: data}
}

// HTTPError represents a non-2xx response from a network fetch.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return errors.Is(target, ErrNotFound)
	default:
		return false
	}
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, url string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
	}
}

// IsHTTPStatus checks if an error represents a specific HTTP status
func IsHTTPStatus(err error, statusCode int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}
	return false
}

// NotFoundError represents a missing or non-regular local file.
type NotFoundError struct {
	Path    string
	Message string
	Err     error
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *NotFoundError) Is(target error) bool {
	return errors.Is(target, ErrNotFound)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(path, message string, err error) *NotFoundError {
	return &NotFoundError{
		Path:    path,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || IsHTTPStatus(err, http.StatusNotFound)
}

// ParseError represents malformed content that failed to decode, carrying a
// bounded preview of the offending source.
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid JSON: %s (source: %s)", e.Err, e.Preview)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return errors.Is(target, ErrParse)
}

// NewParseError creates a new parse error
func NewParseError(preview string, err error) *ParseError {
	return &ParseError{
		Preview: preview,
		Err:     err,
	}
}

// EnvironmentError represents a runtime in which no backend can operate.
type EnvironmentError struct {
	Detected string
}

func (e *EnvironmentError) Error() string {
	if e.Detected != "" {
		return fmt.Sprintf("Unsupported environment: %s", e.Detected)
	}
	return "Unsupported environment"
}

func (e *EnvironmentError) Is(target error) bool {
	return errors.Is(target, ErrEnvironment)
}

// NewEnvironmentError creates a new environment error
func NewEnvironmentError(detected string) *EnvironmentError {
	return &EnvironmentError{Detected: detected}
}

// DownloadError represents a browser-write delivery failure.
type DownloadError struct {
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

func (e *DownloadError) Is(target error) bool {
	return errors.Is(target, ErrDownload)
}

// NewDownloadError creates a new download error
func NewDownloadError(message string, err error) *DownloadError {
	return &DownloadError{
		Message: message,
		Err:     err,
	}
}

// Operation names the dispatch side an error originated from.
type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
	OpBoth  Operation = "both"
)

// OperationError is the single error boundary visible to callers. Every
// public entry point wraps internal failures in this type; the original
// error is preserved as the cause and never discarded.
type OperationError struct {
	Operation Operation
	Strategy  domain.Strategy
	Filename  string
	Err       error
}

func (e *OperationError) Error() string {
	message := "Unknown error"
	if e.Err != nil {
		message = e.Err.Error()
	}
	return fmt.Sprintf("Failed to %s file in %s: %s", e.Operation, e.Strategy.Label(), message)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError wraps err with its operation context.
func NewOperationError(op Operation, strategy domain.Strategy, filename string, err error) *OperationError {
	return &OperationError{
		Operation: op,
		Strategy:  strategy,
		Filename:  filename,
		Err:       err,
	}
}
