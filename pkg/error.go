package pkg

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors, innermost first.
type Error []error

// ErrTableNotFound is returned when no option table exists at any searched
// location. It should be wrapped with the table name and search path.
var ErrTableNotFound = MakeErrorf("option table not found")

// ErrReadTable is returned when an option table cannot be read. It should
// be wrapped with the underlying I/O error.
var ErrReadTable = MakeErrorf("failed to read option table")

// ErrDecodeTable is returned when an option table is not valid YAML or JSON,
// or describes an invalid option configuration.
var ErrDecodeTable = MakeErrorf("invalid option table")

// ErrEncodeTable is returned when an option table or parse result cannot be
// encoded.
var ErrEncodeTable = MakeErrorf("failed to encode")

// ErrRuleCompile is returned when a table rule expression does not compile.
var ErrRuleCompile = MakeErrorf("invalid rule expression")

// ErrRuleEvaluate is returned when a table rule fails at run time.
var ErrRuleEvaluate = MakeErrorf("rule evaluation failed")

// ErrInvalidFormat is returned when an unsupported output format is
// requested. It should be wrapped with the valid formats.
var ErrInvalidFormat = MakeErrorf("invalid format")

// ErrDecodeConfig is returned when the configuration file is not valid
// YAML.
var ErrDecodeConfig = MakeErrorf("invalid configuration file")

// ErrMakeDir is returned when a required directory cannot be created.
var ErrMakeDir = MakeErrorf("failed to create directory")

// MakeError constructs an Error from the given errors. The first argument is
// the innermost error in the chain. Nil errors are skipped.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error joins the chain with ": ", innermost first.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap returns a copy of e with errs appended.
func (e Error) Wrap(errs ...error) Error {
	return append(slices.Clip(e), errs...)
}

// Wrapf returns a copy of e with a formatted error appended.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is reports whether every error in target also appears in e, so a chain
// built by wrapping a sentinel matches that sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.ContainsFunc(e, func(err error) bool { return err == want }) {
			return false
		}
	}

	return true
}

// Unwrap returns the errors contained in e.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns every error in
// it, starting from the innermost.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	switch e := err.(type) {
	case Error:
		// Already flat; the slice itself is not comparable.
		for _, wrapped := range e {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain

	case interface{ Unwrap() []error }:
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

	case interface{ Unwrap() error }:
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
