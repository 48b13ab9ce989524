package parse

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, tokens ...string) *Output {
	t.Helper()

	it, err := NewIterator(tokens, greeting)
	if err != nil {
		t.Fatalf("NewIterator: %v", err)
	}

	out := Collect(it)

	if !it.Done() {
		t.Error("Collect did not drain the iterator")
	}

	return out
}

func TestCollect(t *testing.T) {
	out := collect(t, "-n", "Ann", "--name", "Bob", "-i", "pos", "-x", "--", "-h")

	if v, ok := out.Value("name"); !ok || v != "Bob" {
		t.Errorf("Value(name) = %q, %v, want Bob", v, ok)
	}

	for _, name := range []string{"name", "--name", "n", "-n"} {
		if got := out.Count(name); got != 2 {
			t.Errorf("Count(%q) = %d, want 2", name, got)
		}
	}

	if diff := cmp.Diff([]string{"Ann", "Bob"}, out.Values("-n")); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	if !out.Seen("i") || !out.Seen("--interactive") {
		t.Error("interactive not seen")
	}

	if out.Seen("help") || out.Seen("greeting") || out.Seen("---") {
		t.Error("unexpected option seen")
	}

	if diff := cmp.Diff([]string{"pos", "-h"}, out.Positionals()); diff != "" {
		t.Errorf("Positionals mismatch (-want +got):\n%s", diff)
	}

	errs := out.Errors()
	if len(errs) != 1 || errs[0].Index != 6 || !errors.Is(errs[0], ErrNoMatch) {
		t.Errorf("Errors() = %v", errs)
	}

	if out.OK() {
		t.Error("OK() = true with errors present")
	}

	if got := len(out.Found()); got != 6 {
		t.Errorf("len(Found()) = %d, want 6", got)
	}
}

func TestCollect_LastMatchWins(t *testing.T) {
	out := collect(t, "-n", "Ann", "-n")

	if _, ok := out.Value("name"); ok {
		t.Error("value-less last match should clear the value")
	}

	if out.Count("name") != 2 {
		t.Errorf("Count = %d, want 2", out.Count("name"))
	}

	if !out.OK() {
		t.Error("missing value is not an error by default")
	}
}

func TestOutput_Options(t *testing.T) {
	out := collect(t, "-i", "-n", "A", "--interactive", "-g", "Hi")

	var keys []string
	for s := range out.Options() {
		keys = append(keys, s.Config.Key())
	}

	if diff := cmp.Diff([]string{"interactive", "name", "greeting"}, keys); diff != "" {
		t.Errorf("Options order mismatch (-want +got):\n%s", diff)
	}

	summaries := slices.Collect(out.Options())
	if summaries[0].Count != 2 || summaries[0].HasValue {
		t.Errorf("interactive summary = %+v", summaries[0])
	}
}

func TestOutput_Empty(t *testing.T) {
	out := collect(t)

	if !out.OK() || out.Found() != nil || out.Positionals() != nil || out.Errors() != nil {
		t.Errorf("empty output not empty: %v", out)
	}

	if out.Seen("name") || out.Count("") != 0 {
		t.Error("lookup on empty output matched")
	}
}

func TestOutput_String(t *testing.T) {
	out := collect(t, "-n", "Ann", "x", "--bad")

	want := "-n = Ann\nx\n! unrecognized option: --bad\n"
	if got := out.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
