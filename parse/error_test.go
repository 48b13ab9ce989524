package parse

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Wrap(t *testing.T) {
	cause := errors.New(`"ab" is not a single character`)

	err := ErrInvalidShortName.With(slog.String("short", "ab")).Wrap(cause)

	if !errors.Is(err, ErrInvalidShortName) {
		t.Error("wrapped error does not match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("wrapped error does not match its cause")
	}

	if errors.Is(err, ErrUnnamedOption) {
		t.Error("wrapped error matches an unrelated sentinel")
	}

	if got, want := err.Error(), `invalid short option name: "ab" is not a single character`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if ErrInvalidShortName.Unwrap() != nil {
		t.Error("Wrap modified the sentinel")
	}

	got := map[string]string{}
	for _, a := range err.LogValue().Group() {
		got[a.Key] = a.Value.String()
	}

	for key, want := range map[string]string{
		"error": "invalid short option name",
		"cause": cause.Error(),
		"short": "ab",
	} {
		if got[key] != want {
			t.Errorf("LogValue %s = %q, want %q", key, got[key], want)
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindNoMatch, "no-match"},
		{KindEmptyOptionName, "empty-option-name"},
		{KindAmbiguousConfig, "ambiguous-config"},
		{KindMissingValue, "missing-value"},
		{ErrorKind(7), "ErrorKind(7)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestTokenError_Error(t *testing.T) {
	tests := []struct {
		err  TokenError
		want string
	}{
		{TokenError{Kind: KindNoMatch, Token: "--bad"}, "unrecognized option: --bad"},
		{TokenError{Kind: KindMissingValue, Token: "-n"}, "missing option value: -n"},
		{TokenError{Kind: KindEmptyOptionName}, "missing option name"},
		{TokenError{Kind: ErrorKind(7), Token: "-x"}, "ErrorKind(7): -x"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
