package load

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse indicates a malformed input document. Parsing is all-or-nothing
// per document: a ParseError means no partial model was produced.
var ErrParse = errors.New("ontogen: parse failed")

// ParseError reports a malformed shapes or context document with its
// source position.
type ParseError struct {
	File    string
	Line    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("ontogen: parse error")
	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError.
func NewParseError(file string, line int, message string, cause error) *ParseError {
	return &ParseError{File: file, Line: line, Message: message, Cause: cause}
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
