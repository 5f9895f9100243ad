// Package gen builds the ontology model from parsed shape and context
// documents and emits the typed interfaces and graph-backed wrappers.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidModel indicates an ontology model error.
	ErrInvalidModel = errors.New("ontogen: invalid model")
	// ErrMissingShape indicates a referenced class with no corresponding shape.
	ErrMissingShape = errors.New("ontogen: missing shape")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("ontogen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("ontogen: code generation failed")
)

// ModelError represents an ontology model error.
type ModelError struct {
	Class    string // Class name or IRI
	Property string // Predicate (if applicable)
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	var b strings.Builder
	b.WriteString("ontogen: model error")
	if e.Class != "" {
		b.WriteString(" on class ")
		b.WriteString(e.Class)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
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
func (e *ModelError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ModelError.
func (e *ModelError) Is(target error) bool {
	return target == ErrInvalidModel
}

// NewModelError creates a new ModelError.
func NewModelError(class, property, message string, cause error) *ModelError {
	return &ModelError{Class: class, Property: property, Message: message, Cause: cause}
}

// MissingShapeError reports a class referenced as a property target that
// has no shape of its own in the loaded documents.
type MissingShapeError struct {
	Class        string // The class with no shape
	ReferencedBy string // The class whose property references it
	Property     string // The referencing predicate
}

// Error implements the error interface.
func (e *MissingShapeError) Error() string {
	var b strings.Builder
	b.WriteString("ontogen: no shape declared for class ")
	b.WriteString(e.Class)
	if e.ReferencedBy != "" {
		b.WriteString(", referenced by ")
		b.WriteString(e.ReferencedBy)
	}
	if e.Property != "" {
		fmt.Fprintf(&b, " (property %s)", e.Property)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for MissingShapeError.
func (e *MissingShapeError) Is(target error) bool {
	return target == ErrMissingShape
}

// NewMissingShapeError creates a new MissingShapeError.
func NewMissingShapeError(class, referencedBy, property string) *MissingShapeError {
	return &MissingShapeError{Class: class, ReferencedBy: referencedBy, Property: property}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("ontogen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("ontogen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "interface", "wrapper", "constants"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("ontogen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
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
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: message, Cause: cause}
}

// IsModelError reports whether the error is a ModelError.
func IsModelError(err error) bool {
	var modelErr *ModelError
	return errors.As(err, &modelErr)
}

// IsMissingShapeError reports whether the error is a MissingShapeError.
func IsMissingShapeError(err error) bool {
	var missingErr *MissingShapeError
	return errors.As(err, &missingErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
