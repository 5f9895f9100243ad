package ontogen

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/semforge/ontogen/rdf"
)

// Standard sentinel errors for runtime operations.
var (
	// ErrNotRegistered is returned when materialization is requested for an
	// interface that has no wrapper factory. Unlike data-quality issues it
	// signals a build or linkage inconsistency: a generated wrapper package
	// was not compiled into the binary.
	ErrNotRegistered = errors.New("ontogen: no wrapper registered")

	// ErrConversion is the sentinel for literal conversion failures. It is
	// reported, never propagated: conversion is fail-soft throughout.
	ErrConversion = errors.New("ontogen: literal conversion failed")
)

// NotRegisteredError reports a materialization request for an interface
// with no registered factory.
type NotRegisteredError struct {
	iface reflect.Type
}

// Error returns the error string.
func (e *NotRegisteredError) Error() string {
	if e.iface != nil {
		return fmt.Sprintf("ontogen: no wrapper registered for interface %s", e.iface)
	}
	return "ontogen: no wrapper registered"
}

// Is reports whether the target matches the sentinel for NotRegisteredError.
func (e *NotRegisteredError) Is(err error) bool {
	return err == ErrNotRegistered
}

// Interface returns the interface token the lookup failed for.
func (e *NotRegisteredError) Interface() reflect.Type {
	return e.iface
}

// NewNotRegisteredError returns a new NotRegisteredError for the given
// interface token.
func NewNotRegisteredError(iface reflect.Type) *NotRegisteredError {
	return &NotRegisteredError{iface: iface}
}

// IsNotRegistered reports whether the error is a NotRegisteredError.
func IsNotRegistered(err error) bool {
	if err == nil {
		return false
	}
	var e *NotRegisteredError
	return errors.As(err, &e) || errors.Is(err, ErrNotRegistered)
}

// ConversionError reports a literal whose lexical form does not match its
// declared datatype.
type ConversionError struct {
	Literal rdf.Literal
	Cause   error
}

// Error returns the error string.
func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ontogen: cannot convert %q as %s: %v", e.Literal.Lexical, e.Literal.Datatype, e.Cause)
	}
	return fmt.Sprintf("ontogen: cannot convert %q as %s", e.Literal.Lexical, e.Literal.Datatype)
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel for ConversionError.
func (e *ConversionError) Is(err error) bool {
	return err == ErrConversion
}

// NewConversionError returns a new ConversionError for the given literal.
func NewConversionError(l rdf.Literal, cause error) *ConversionError {
	return &ConversionError{Literal: l, Cause: cause}
}

// IsConversion reports whether the error is a ConversionError.
func IsConversion(err error) bool {
	if err == nil {
		return false
	}
	var e *ConversionError
	return errors.As(err, &e) || errors.Is(err, ErrConversion)
}
