// Package errors provides structured error handling for the reactive library.
package errors

import (
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindProperty indicates access to a property that does not exist.
	KindProperty
	// KindType indicates a value of the wrong type for a property.
	KindType
	// KindSnapshot indicates a snapshot encode or decode failure.
	KindSnapshot
)

func (k ErrorKind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindType:
		return "type"
	case KindSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the reactive library.
type Error struct {
	// Op is the operation that failed (e.g., "record.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Property is the property identifier involved, if applicable.
	Property string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s [%s] property=%s: %v", e.Op, e.Kind, e.Property, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UnknownPropertyError represents access to a property identifier that is
// not part of the record's closed property set.
type UnknownPropertyError struct {
	// Property is the identifier that was requested.
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("no such property %q", e.Property)
}

// TypeError represents a property assignment with a value of the wrong
// dynamic type.
type TypeError struct {
	// Property is the property being assigned.
	Property string
	// Want is the expected type name.
	Want string
	// Got is the value that was supplied.
	Got any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("property %q wants %s: got %T", e.Property, e.Want, e.Got)
}
