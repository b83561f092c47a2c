// Package oaserrors provides structured error types for oasdocs.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a missing input file apart from a
// malformed document or a bad option.
//
// # Error Categories
//
//   - InputError: the spec file is missing or unreadable
//   - DecodeError: the content is not valid YAML/JSON for the chosen decoder
//   - ConfigError: invalid configuration or CLI options
//   - RenderError: a template or output write failed
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInput indicates the input document could not be read.
	ErrInput = errors.New("input error")

	// ErrNotFound indicates the input document does not exist.
	ErrNotFound = errors.New("input not found")

	// ErrDecode indicates the input document is not valid YAML or JSON.
	ErrDecode = errors.New("decode error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrRender indicates rendering or writing the site failed.
	ErrRender = errors.New("render error")
)

// InputError represents a failure to read a spec file.
type InputError struct {
	// Path is the file path that was requested
	Path string
	// NotFound is true when the file does not exist
	NotFound bool
	// Hint is a short suggestion shown to the user, if any
	Hint string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.NotFound {
		msg = "input not found"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrInput, and ErrNotFound when NotFound is set.
func (e *InputError) Is(target error) bool {
	if target == ErrInput {
		return true
	}
	return target == ErrNotFound && e.NotFound
}

// DecodeError represents content that the selected decoder rejected.
type DecodeError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the decoder that was used ("yaml" or "json")
	Format string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the decoder's error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// RenderError represents a failure while producing or writing site files.
type RenderError struct {
	// Stage names the step that failed, e.g. "html", "css", "write"
	Stage string
	// Path is the output file involved, if any
	Path string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RenderError) Error() string {
	msg := "render error"
	if e.Stage != "" {
		msg += " (" + e.Stage + ")"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
