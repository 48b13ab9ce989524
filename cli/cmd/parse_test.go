package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

func TestParse_Run_Text(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Parse
		noRules bool
		want    string
		wantErr bool
	}{
		{
			name: "accepted",
			cmd:  Parse{Args: []string{"--name", "Ann", "-g", "hi"}},
			want: "--name = Ann\n-g = hi\n",
		},
		{
			name: "positional_violates_rule",
			cmd:  Parse{Args: []string{"-n", "Ann", "x"}},
			want: "-n = Ann\nx\n" +
				"! greet takes no positional arguments [no-arguments]\n",
			wantErr: true,
		},
		{
			name: "suggestion",
			cmd:  Parse{Suggest: true, Args: []string{"-i", "--nam"}},
			want: "-i\n! unrecognized option: --nam (did you mean --name?)\n",
			wantErr: true,
		},
		{
			name: "no_suggestion",
			cmd:  Parse{Args: []string{"--nam"}},
			want: "! unrecognized option: --nam\n" +
				"! either --name or --interactive is required [name-or-prompt]\n",
			wantErr: true,
		},
		{
			name:    "rules_disabled",
			cmd:     Parse{Args: []string{"x"}},
			noRules: true,
			want:    "x\n",
		},
		{
			name: "strict",
			cmd:  Parse{Strict: true, Args: []string{"-i", "-n"}},
			want: "-i\n! missing option value: -n\n",
			wantErr: true,
		},
		{
			name: "lenient",
			cmd:  Parse{Args: []string{"-i", "-n"}},
			want: "-i\n-n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			ctx := kongContext(t, kong.Vars{}, &out)

			cmd := tt.cmd
			cmd.Format = "text"
			cmd.Rules = !tt.noRules

			err := cmd.Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrParseFailed) {
				t.Errorf("Run() error = %v, want %v", err, ErrParseFailed)
			}

			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Run_JSON(t *testing.T) {
	var out bytes.Buffer

	ctx := kongContext(t, kong.Vars{}, &out)

	cmd := Parse{
		Format:  "json",
		Suggest: true,
		Args:    []string{"-n", "Ann", "--nam", "--name", "Bob"},
	}

	if err := cmd.Run(ctx); !errors.Is(err, ErrParseFailed) {
		t.Fatalf("Run() error = %v, want %v", err, ErrParseFailed)
	}

	var got report
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}

	ann, bob := "Ann", "Bob"

	wantResults := []result{
		{Type: "option", Index: 0, Token: "-n", Option: "name", Value: &ann},
		{
			Type:    "error",
			Index:   2,
			Token:   "--nam",
			Error:   "unrecognized option: --nam",
			Suggest: []string{"--name"},
		},
		{Type: "option", Index: 3, Token: "--name", Option: "name", Value: &bob},
	}

	if diff := cmp.Diff(wantResults, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	wantOptions := []summary{{Option: "name", Count: 2, Values: []string{"Ann", "Bob"}}}

	if diff := cmp.Diff(wantOptions, got.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Run_YAML(t *testing.T) {
	var out bytes.Buffer

	ctx := kongContext(t, kong.Vars{}, &out)

	cmd := Parse{Format: "yaml", Rules: true, Args: []string{"-i", "x"}}

	if err := cmd.Run(ctx); !errors.Is(err, ErrParseFailed) {
		t.Fatalf("Run() error = %v, want %v", err, ErrParseFailed)
	}

	for _, want := range []string{
		"type: positional",
		"option: interactive",
		"rule: no-arguments",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("YAML output lacks %q:\n%s", want, out.String())
		}
	}
}
