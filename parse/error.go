//go:generate go tool stringer --linecomment --type ErrorKind --output errorkind_string.go

package parse

import (
	"log/slog"
	"strings"
)

// Configuration errors. These abort a run before any token is read.
var (
	ErrAmbiguousConfig  = NewError("ambiguous option configuration")
	ErrUnnamedOption    = NewError("option has neither short nor long name")
	ErrInvalidShortName = NewError("invalid short option name")
)

// Token errors. These are scoped to a single token and never abort a run.
// A [*TokenError] matches the sentinel of its kind with [errors.Is].
var (
	ErrNoMatch         = NewError("unrecognized option")
	ErrEmptyOptionName = NewError("missing option name")
	ErrMissingValue    = NewError("missing option value")
)

// Error is the public error surface of the engine. It carries a message, an
// optional wrapped cause, and attributes for structured logging.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	//   "<msg>: <err>", "<msg>", "<err>", or ""
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
// Errors derived from the same sentinel share its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.err != nil || t.msg == "" {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ErrorKind classifies a [TokenError].
type ErrorKind int

const (
	// KindNoMatch means no configured option has the token's name.
	KindNoMatch ErrorKind = iota // no-match
	// KindEmptyOptionName means the token is a hyphen with no name ("-").
	KindEmptyOptionName // empty-option-name
	// KindAmbiguousConfig means more than one option has the token's name.
	KindAmbiguousConfig // ambiguous-config
	// KindMissingValue means a value-taking option had no value to consume.
	// It is only reported in strict value mode.
	KindMissingValue // missing-value
)

// sentinel returns the package error a kind corresponds to.
func (k ErrorKind) sentinel() *Error {
	switch k {
	case KindNoMatch:
		return ErrNoMatch
	case KindEmptyOptionName:
		return ErrEmptyOptionName
	case KindAmbiguousConfig:
		return ErrAmbiguousConfig
	case KindMissingValue:
		return ErrMissingValue
	default:
		return nil
	}
}

// TokenError is a per-token parse error. It names the offending raw token
// and its position in the input.
type TokenError struct {
	Kind  ErrorKind
	Token string
	Index int
}

func (e *TokenError) Error() string {
	var msg string
	if s := e.Kind.sentinel(); s != nil {
		msg = s.msg
	} else {
		msg = e.Kind.String()
	}

	if e.Token == "" {
		return msg
	}

	return msg + ": " + e.Token
}

// Is reports whether target is the sentinel for e.Kind.
func (e *TokenError) Is(target error) bool {
	s := e.Kind.sentinel()

	return s != nil && target == error(s)
}

// LogValue implements slog.LogValuer.
func (e *TokenError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", e.Kind.String()),
		slog.String("token", e.Token),
		slog.Int("index", e.Index),
	)
}
