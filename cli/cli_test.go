package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/commander/cli/cmd"
	"github.com/ardnew/commander/log"
	"github.com/ardnew/commander/pkg"
)

func TestRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	exit := func(code int) { t.Fatalf("unexpected exit(%d)", code) }

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "usage", args: []string{"usage", "--no-color"}},
		{name: "accepted", args: []string{"parse", "--", "--name", "Ann"}},
		{
			name:    "rejected",
			args:    []string{"parse", "--format=json", "--", "--bogus"},
			wantErr: cmd.ErrParseFailed,
		},
		{
			name:    "missing_table",
			args:    []string{"usage", "--table=absent"},
			wantErr: pkg.ErrTableNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(t.Context(), exit, tt.args...)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Run(%q) error = %v", tt.args, err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}

	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("required directory %q not created: %v", dir, err)
		}
	}
}

func TestPathWithExt(t *testing.T) {
	if got := pathWithExt("/a/config.yaml", ".json"); got != "/a/config.json" {
		t.Errorf("pathWithExt = %q", got)
	}

	if got := pathWithExt("/a/config", ".json"); got != "/a/config.json" {
		t.Errorf("pathWithExt without extension = %q", got)
	}
}
