// Package apperr defines the closed set of failure kinds reported by data-explorer.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for programmatic handling.
type Kind int

const (
	Unknown Kind = iota
	// FileNotFound is a missing or unreadable input file. Fatal at startup.
	FileNotFound
	// ColumnNotFound is a named column absent from the table.
	ColumnNotFound
	// TypeMismatch is a column of the wrong type for the requested operation.
	TypeMismatch
	// ConflictingArguments covers absent, conflicting or malformed flags.
	ConflictingArguments
	// NoData means nothing was left to average or plot.
	NoData
	// RenderFailure is a chart that could not be written.
	RenderFailure
	// ExportFailure is any failure while serializing the table.
	ExportFailure
)

var kindNames = map[Kind]string{
	Unknown:              "unknown",
	FileNotFound:         "file not found",
	ColumnNotFound:       "column not found",
	TypeMismatch:         "type mismatch",
	ConflictingArguments: "conflicting arguments",
	NoData:               "no data",
	RenderFailure:        "render failure",
	ExportFailure:        "export failure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure with a human-readable message.
type Error struct {
	Kind   Kind
	Column string
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so errors.Is works
// against kind templates such as &Error{Kind: TypeMismatch}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

// New builds an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// MissingColumn is the standard ColumnNotFound error.
func MissingColumn(name string) *Error {
	return &Error{Kind: ColumnNotFound, Column: name, Msg: fmt.Sprintf("column '%s' not found in the dataset", name)}
}

// NotNumeric is the standard TypeMismatch error for a column that must hold numbers.
func NotNumeric(name, purpose string) *Error {
	return &Error{Kind: TypeMismatch, Column: name, Msg: fmt.Sprintf("column '%s' is not numeric; %s requires numeric data", name, purpose)}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
