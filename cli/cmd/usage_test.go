package cmd

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/pkg"
	"github.com/ardnew/commander/table"
	"github.com/ardnew/commander/usage"
)

func TestUsage_Run_Text(t *testing.T) {
	var out bytes.Buffer

	ctx := kongContext(t, kong.Vars{}, &out)

	if err := (&Usage{Format: "text", NoColor: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	sample := table.Sample()

	configs, err := sample.Configs()
	if err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer

	err = usage.Text{NoColor: true}.Render(&want, sample.Describe(parse.App{Name: pkg.Name}), configs)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want.String(), out.String()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

func TestUsage_Run_Table(t *testing.T) {
	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer

			ctx := kongContext(t, kong.Vars{}, &out)

			if err := (&Usage{Format: format}).Run(ctx); err != nil {
				t.Fatal(err)
			}

			got, err := table.Decode(t.Context(), &out)
			if err != nil {
				t.Fatalf("printed table does not decode: %v", err)
			}

			if diff := cmp.Diff(table.Sample(), got); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
