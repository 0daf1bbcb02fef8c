package errors

import (
	"fmt"
)

// MalformedColorError reports a color value that could not be parsed.
type MalformedColorError struct {
	Input string
	Err   error
}

// NewMalformedColorError constructs a MalformedColorError for the raw input.
func NewMalformedColorError(input string, err error) error {
	return &MalformedColorError{Input: input, Err: err}
}

func (e *MalformedColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed color %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("malformed color %q", e.Input)
}

// Unwrap exposes the underlying parser error.
func (e *MalformedColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and option validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RewriteError reports a source file that could not be rewritten.
type RewriteError struct {
	Path string
	Err  error
}

// NewRewriteError constructs a RewriteError for the given file.
func NewRewriteError(path string, err error) error {
	return &RewriteError{Path: path, Err: err}
}

func (e *RewriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("rewrite error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("rewrite error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RewriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
