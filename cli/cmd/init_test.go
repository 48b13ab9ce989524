package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/commander/table"
)

func TestInit_Run(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Init
		setup   func(t *testing.T, path string)
		wantErr error
	}{
		{name: "create_new_table"},
		{
			name: "overwrite_existing_with_force",
			cmd:  Init{Force: true},
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "greet.yaml")

			if tt.setup != nil {
				tt.setup(t, path)
			}

			var out bytes.Buffer

			ctx := kongContext(t, kong.Vars{TablesIdentifier: dir}, &out)

			err := tt.cmd.Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteTable) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			got, err := table.Load(t.Context(), path)
			if err != nil {
				t.Fatalf("written table does not load: %v", err)
			}

			if diff := cmp.Diff(table.Sample(), got); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInit_Run_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "greet.json")

	var out bytes.Buffer

	ctx := kongContext(t, kong.Vars{}, &out)

	if err := (&Init{File: path}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), "{") {
		t.Errorf("expected JSON output, got:\n%s", data)
	}
}

func TestInit_Run_InvalidPath(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer

	// A regular file cannot be a parent directory.
	ctx := kongContext(t, kong.Vars{TablesIdentifier: filepath.Join(file, "sub")}, &out)

	err := (&Init{}).Run(ctx)
	if !errors.Is(err, ErrWriteTable) {
		t.Errorf("Run() error = %v, want %v", err, ErrWriteTable)
	}
}

func TestInit_Run_Config(t *testing.T) {
	var cli struct {
		Level  string `default:"info"`
		Pretty bool   `default:"true"`
		Count  int    `default:"3"`
		Empty  string
	}

	confPath := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer

	parser, err := kong.New(&cli,
		kong.Vars{ConfigIdentifier: confPath},
		kong.Writers(&out, &out),
	)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(t.Context(), ktx)

	ic := &Init{Config: true}

	want := map[string]any{"level": "info", "pretty": true, "count": 3}
	if diff := cmp.Diff(want, ic.settings(ctx)); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}

	if err := ic.Run(ctx); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(confPath)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"level: info", "pretty: true", "count: 3"} {
		if !strings.Contains(string(data), line) {
			t.Errorf("config file lacks %q:\n%s", line, data)
		}
	}
}

func TestFlagSetting(t *testing.T) {
	type level string

	tests := []struct {
		in     any
		want   any
		wantOK bool
	}{
		{nil, nil, false},
		{true, true, true},
		{42, 42, true},
		{"", "", false},
		{"x", "x", true},
		{[]string{}, []string{}, false},
		{[]string{"a"}, []string{"a"}, true},
		{level("debug"), "debug", true},
	}

	for _, tt := range tests {
		got, ok := flagSetting(tt.in)
		if ok != tt.wantOK || (ok && !cmp.Equal(got, tt.want)) {
			t.Errorf("flagSetting(%#v) = %#v, %v; want %#v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
