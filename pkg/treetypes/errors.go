// Package treetypes defines the shared types of the object-tree control layer:
// the Direction enum and the closed set of input error kinds.
package treetypes

import (
	"errors"
	"fmt"
)

// Error kinds reported by the conversion and input layer. Every error produced
// while parsing user input matches exactly one of these through errors.Is.
var (
	// ErrInvalidArgument means the token's text does not parse as the requested type.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange means the token is well-formed but does not fit the target type.
	ErrOutOfRange = errors.New("out of range")
	// ErrExhausted means an argument was requested but no tokens remain.
	ErrExhausted = errors.New("not enough arguments")
	// ErrEmptyCommand means the command name was requested on an empty input.
	ErrEmptyCommand = errors.New("empty command")
	// ErrIndexOutOfRange means indexed access went past the end of a token sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrTrailingArguments means a command finished reading while tokens were left over.
	ErrTrailingArguments = errors.New("too many arguments")
)

// ParseError describes why a single token could not be converted.
type ParseError struct {
	Kind   error  // one of the Err* kinds above
	Token  string // the offending raw token
	Reason string // user-facing explanation
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind error, token, reason string) *ParseError {
	return &ParseError{Kind: kind, Token: token, Reason: reason}
}

// Error implements error. The text is meant to be shown to the user as is.
func (e *ParseError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: \"%s\"", e.Kind, e.Token)
}

// Unwrap exposes the error kind to errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Kind
}
