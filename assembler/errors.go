package assembler

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the parsers wraps exactly one of these.
var (
	// ErrTag means no alternative matched the input.
	ErrTag = errors.New("no match")
	// ErrMalformed means a digit run was empty or out of range.
	ErrMalformed = errors.New("malformed number")
	// ErrTooLarge means an offset did not fit in 16 bits.
	ErrTooLarge = errors.New("offset too large")
	// ErrVerify means a register is not allowed in its position.
	ErrVerify = errors.New("invalid register")
)

// ParseError describes a failed parse.
type ParseError struct {
	// Kind is one of ErrTag, ErrMalformed, ErrTooLarge or ErrVerify.
	Kind error
	// Reason is a short human-readable explanation.
	Reason string
	// Input is the text the failing parser was looking at.
	Input string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s at %q", e.Kind, e.Reason, e.Input)
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newError(kind error, reason, input string) *ParseError {
	return &ParseError{Kind: kind, Reason: reason, Input: input}
}

// isTerminal reports whether err must stop backtracking.
func isTerminal(err error) bool {
	return errors.Is(err, ErrVerify) || errors.Is(err, ErrTooLarge)
}
