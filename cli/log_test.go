package cli

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/commander/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	defaults := logConfig{Level: "info", Format: "text", Pretty: true}

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate_values",
			args: []string{"parse", "--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned_values",
			args: []string{"--log-level=warn", "--log-caller"},
			want: logConfig{Level: "warn", Format: "text", Caller: true, Pretty: true},
		},
		{
			name: "negated_booleans",
			args: []string{"--no-log-pretty", "--log-caller=false"},
			want: logConfig{Level: "info", Format: "text"},
		},
		{
			name: "negated_assigned",
			args: []string{"--no-log-pretty=false"},
			want: defaults,
		},
		{
			name: "value_looks_like_flag",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Format: "text", Caller: true, Pretty: true},
		},
		{
			name: "stops_at_separator",
			args: []string{"--", "--log-level", "error", "--no-log-pretty"},
			want: defaults,
		},
		{
			name: "ignores_unrelated",
			args: []string{"--logger", "--log-unknown", "-l"},
			want: defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaults
			got.scan(tt.args)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("scan(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}
