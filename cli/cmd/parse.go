package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/commander/log"
	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/table"
	"github.com/ardnew/commander/usage"
)

// Parse runs the parser over the given arguments and prints every result.
type Parse struct {
	Source `embed:""`

	Format  string   `default:"text" enum:"text,json,yaml" help:"Output format (${enum})"                          short:"f"`
	Strict  bool     `                                       help:"Report value-taking options without a value as errors"`
	Suggest bool     `default:"true"                         help:"Suggest similar names for unrecognized options"  negatable:""`
	Rules   bool     `default:"true"                         help:"Check the table's rules"                         negatable:""`
	Args    []string `arg:""                                 help:"Arguments to parse; place them after --"         optional:""`
}

// Run executes the parse command. It fails with [ErrParseFailed] when any
// token is invalid or any rule is violated.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tbl, err := p.load(ctx)
	if err != nil {
		return err
	}

	configs, err := tbl.Configs()
	if err != nil {
		return err
	}

	it, err := parse.NewIterator(p.Args, configs,
		parse.WithLogger(log.Default()),
		parse.WithStrictValues(p.Strict || tbl.Strict),
	)
	if err != nil {
		return err
	}

	out := parse.Collect(it)

	var violations []table.Violation

	if p.Rules {
		violations, err = tbl.Check(out)
		if err != nil {
			return err
		}
	}

	rep := makeReport(out, configs, violations, p.Suggest)

	w := stdoutFrom(ctx)

	if p.Format == "text" {
		err = rep.write(w)
	} else {
		err = table.Encode(ctx, w, table.Format(p.Format), rep)
	}

	if err != nil {
		return err
	}

	log.DebugContext(ctx, "parsed arguments",
		slog.Int("results", len(rep.Results)),
		slog.Int("errors", rep.errors),
		slog.Int("violations", len(rep.Violations)),
	)

	if rep.errors > 0 || len(rep.Violations) > 0 {
		return ErrParseFailed.With(
			slog.Int("errors", rep.errors),
			slog.Int("violations", len(rep.Violations)),
		)
	}

	return nil
}

// result is the serialized form of one [parse.Found].
type result struct {
	Type    string   `json:"type"              yaml:"type"`
	Index   int      `json:"index"             yaml:"index"`
	Token   string   `json:"token"             yaml:"token"`
	Option  string   `json:"option,omitempty"  yaml:"option,omitempty"`
	Value   *string  `json:"value,omitempty"   yaml:"value,omitempty"`
	Error   string   `json:"error,omitempty"   yaml:"error,omitempty"`
	Suggest []string `json:"suggest,omitempty" yaml:"suggest,omitempty"`
}

type summary struct {
	Option string   `json:"option"           yaml:"option"`
	Count  int      `json:"count"            yaml:"count"`
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`
}

type violation struct {
	Rule    string `json:"rule"    yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

type report struct {
	Results     []result    `json:"results"               yaml:"results"`
	Options     []summary   `json:"options,omitempty"     yaml:"options,omitempty"`
	Positionals []string    `json:"positionals,omitempty" yaml:"positionals,omitempty"`
	Violations  []violation `json:"violations,omitempty"  yaml:"violations,omitempty"`

	errors int
}

func makeReport(
	out *parse.Output,
	configs []parse.OptionConfig,
	violations []table.Violation,
	suggest bool,
) report {
	rep := report{
		Results:     []result{},
		Positionals: out.Positionals(),
	}

	for _, f := range out.Found() {
		switch f := f.(type) {
		case parse.Matched:
			r := result{Type: "option", Index: f.Index, Token: f.Token}

			if f.Config != nil {
				r.Option = f.Config.Key()
			}

			if f.HasValue {
				r.Value = &f.Value
			}

			rep.Results = append(rep.Results, r)

		case parse.Positional:
			rep.Results = append(rep.Results,
				result{Type: "positional", Index: f.Index, Token: f.Text})

		case parse.Invalid:
			r := result{
				Type:  "error",
				Index: f.Index,
				Token: f.Err.Token,
				Error: f.Err.Error(),
			}

			if suggest && f.Err.Kind == parse.KindNoMatch {
				r.Suggest = usage.Suggest(f.Err.Token, configs, 0)
			}

			rep.errors++
			rep.Results = append(rep.Results, r)
		}
	}

	for s := range out.Options() {
		rep.Options = append(rep.Options, summary{
			Option: s.Config.Key(),
			Count:  s.Count,
			Values: s.Values,
		})
	}

	for _, v := range violations {
		rep.Violations = append(rep.Violations,
			violation{Rule: v.Rule.Name, Message: v.Error()})
	}

	return rep
}

// write prints one line per result followed by one line per violation.
// Lines describing problems start with "! ".
func (r report) write(w io.Writer) error {
	var sb strings.Builder

	for _, res := range r.Results {
		switch res.Type {
		case "option":
			sb.WriteString(res.Token)

			if res.Value != nil {
				sb.WriteString(" = ")
				sb.WriteString(*res.Value)
			}

		case "positional":
			sb.WriteString(res.Token)

		default:
			sb.WriteString("! ")
			sb.WriteString(res.Error)

			if len(res.Suggest) > 0 {
				fmt.Fprintf(&sb, " (did you mean %s?)",
					strings.Join(res.Suggest, " or "))
			}
		}

		sb.WriteByte('\n')
	}

	for _, v := range r.Violations {
		fmt.Fprintf(&sb, "! %s [%s]\n", v.Message, v.Rule)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
