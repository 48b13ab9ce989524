package parse

import (
	"errors"
	"testing"
)

var greeting = []OptionConfig{
	{Short: 'n', Long: "name", Description: "who to greet", TakesValue: true},
	{Short: 'g', Long: "greeting", Description: "how to greet", TakesValue: true},
	{Short: 'i', Long: "interactive", Description: "prompt for input"},
	{Short: 'h', Long: "help", Description: "show help"},
}

func TestMatch(t *testing.T) {
	tests := []struct {
		token string
		want  string
		kind  ErrorKind
	}{
		{"-n", "name", 0},
		{"--name", "name", 0},
		{"-i", "interactive", 0},
		{"--help", "help", 0},
		{"--Name", "", KindNoMatch},
		{"--nam", "", KindNoMatch},
		{"--names", "", KindNoMatch},
		{"-x", "", KindNoMatch},
		{"-ni", "", KindNoMatch},
		{"-", "", KindEmptyOptionName},
		{"plain", "", KindNoMatch},
		{"--", "", KindNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			cfg, err := Match(tt.token, Classify(tt.token), greeting)

			if tt.want != "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if cfg.Key() != tt.want {
					t.Errorf("matched %q, want %q", cfg.Key(), tt.want)
				}

				if cfg != &greeting[indexOf(tt.want)] {
					t.Error("result does not refer into the table")
				}

				return
			}

			var te *TokenError
			if !errors.As(err, &te) {
				t.Fatalf("error %v is not a *TokenError", err)
			}

			if te.Kind != tt.kind || te.Token != tt.token {
				t.Errorf("got %v %q, want %v %q", te.Kind, te.Token, tt.kind, tt.token)
			}
		})
	}
}

func TestMatch_AmbiguousTable(t *testing.T) {
	configs := []OptionConfig{
		{Short: 'v', Long: "verbose"},
		{Short: 'v', Long: "version"},
	}

	_, err := Match("-v", HyphenShort, configs)
	if !errors.Is(err, ErrAmbiguousConfig) {
		t.Errorf("got %v, want ambiguous config", err)
	}

	if _, err := Match("--verbose", HyphenLong, configs); err != nil {
		t.Errorf("unique long name failed: %v", err)
	}
}

func indexOf(long string) int {
	for i, c := range greeting {
		if c.Long == long {
			return i
		}
	}

	return -1
}
