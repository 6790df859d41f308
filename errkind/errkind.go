// Package errkind defines the error taxonomy shared by every transitnet package.
//
// Each package declares its own sentinels (core.ErrNodeNotFound,
// fleet.ErrTableFull, ...) with New, so a caller can match either the precise
// sentinel or its broad kind:
//
//	errors.Is(err, core.ErrNodeNotFound) // precise
//	errors.Is(err, errkind.ErrNotFound)  // any missing node, edge or vehicle
package errkind

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrValidation covers empty required fields, non-positive weights,
	// exhausted capacity and duplicate ids or edges.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers missing nodes, edges and vehicles.
	ErrNotFound = errors.New("not found")

	// ErrIO covers file open, create, write and rename failures.
	ErrIO = errors.New("i/o failure")

	// ErrFormat covers malformed persisted records.
	ErrFormat = errors.New("malformed record")
)

// kindError is a sentinel carrying its own message and unwrapping to a kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New returns a sentinel error with message msg that matches kind under errors.Is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Is reports whether err belongs to kind. It is a readability shorthand for errors.Is.
func Is(err, kind error) bool {
	return errors.Is(err, kind)
}

// FormatError reports a persisted record that could not be parsed.
// Line is 1-based.
type FormatError struct {
	Path string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

// Unwrap exposes both the underlying cause and ErrFormat.
func (e *FormatError) Unwrap() []error { return []error{ErrFormat, e.Err} }
