package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistory_PersistsModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	writes := []HistoryEntry{
		{"-n Ann", modeParse},
		{"list", modeCtrl},
		{"-i", modeParse},
		{"-i", modeParse}, // repeat of the last entry is ignored
		{"-n Ann", modeParse},
		{"-n Ann", modeCtrl},
	}

	for _, w := range writes {
		if _, err := h.WriteWithMode(w.Line, w.Mode); err != nil {
			t.Fatal(err)
		}
	}

	want := []HistoryEntry{
		{"list", modeCtrl},
		{"-i", modeParse},
		{"-n Ann", modeParse},
		{"-n Ann", modeCtrl},
	}

	if diff := cmp.Diff(want, h.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, reloaded.Entries()); diff != "" {
		t.Errorf("reloaded entries mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_LoadUnprefixedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	content := "P:-n Ann\n\nplain words\nC:quit\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	want := []HistoryEntry{
		{"-n Ann", modeParse},
		{"plain words", modeParse},
		{"quit", modeCtrl},
	}

	if diff := cmp.Diff(want, h.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_MissingFileIsEmpty(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "missing"))

	if err := h.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}

	if _, err := h.GetEntry(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetEntry(0) error = %v, want %v", err, ErrOutOfBounds)
	}
}
