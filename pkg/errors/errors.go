// Package errors provides structured error handling for the scene graph.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindVariable indicates an unset read or a wrong-kind write of a variable slot.
	KindVariable
	// KindReference indicates a lookup of an element key that does not exist.
	KindReference
	// KindViewport indicates a degenerate viewport size.
	KindViewport
	// KindDocument indicates a malformed scene document.
	KindDocument
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindReference:
		return "reference"
	case KindViewport:
		return "viewport"
	case KindDocument:
		return "document"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SceneError represents a structured error raised by the scene graph.
type SceneError struct {
	// Op is the operation that failed (e.g., "scene.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element describes the element involved, if any (e.g., "#3 button").
	Element string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SceneError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SceneError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scene.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// DocumentError represents a failure to interpret part of a scene document.
type DocumentError struct {
	// Path locates the offending node (e.g., "root.children[2].width").
	Path string
	// Got is the value found at Path.
	Got any
	// Reason describes what was expected.
	Reason string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s: %s (got %T %v)", e.Path, e.Reason, e.Got, e.Got)
}

// ErrorHandler receives errors reported by the scene graph.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SceneError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
