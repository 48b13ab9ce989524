package repl

import (
	"strings"

	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/table"
	"github.com/ardnew/commander/usage"
)

type lineKind int

const (
	lineOption lineKind = iota
	linePositional
	lineError
	lineViolation
)

// line is one printed result of a parsed input line.
type line struct {
	kind     lineKind
	text     string // token, positional text, or message
	key      string // option key or rule name
	value    string
	hasValue bool
	suggest  []string
}

// describe lists the results of out in input order, followed by the
// violated rules.
func describe(
	out *parse.Output,
	violations []table.Violation,
	configs []parse.OptionConfig,
) []line {
	var lines []line

	for _, f := range out.Found() {
		switch f := f.(type) {
		case parse.Matched:
			l := line{
				kind:     lineOption,
				text:     f.Token,
				value:    f.Value,
				hasValue: f.HasValue,
			}

			if f.Config != nil {
				l.key = f.Config.Key()
			}

			lines = append(lines, l)

		case parse.Positional:
			lines = append(lines, line{kind: linePositional, text: f.Text})

		case parse.Invalid:
			l := line{kind: lineError, text: f.Err.Error()}

			if f.Err.Kind == parse.KindNoMatch {
				l.suggest = usage.Suggest(f.Err.Token, configs, 0)
			}

			lines = append(lines, l)
		}
	}

	for _, v := range violations {
		lines = append(lines, line{
			kind: lineViolation,
			text: v.Error(),
			key:  v.Rule.Name,
		})
	}

	return lines
}

// String returns the unstyled form of l.
func (l line) String() string { return l.render(unstyled) }

// render formats l, passing each span through the matching style of p.
func (l line) render(p *palette) string {
	var b strings.Builder

	switch l.kind {
	case lineOption:
		b.WriteString(p.option(l.text))

		if l.key != "" {
			b.WriteString(" " + p.hint("["+l.key+"]"))
		}

		if l.hasValue {
			b.WriteString(" = " + p.value(l.value))
		}

	case linePositional:
		b.WriteString(p.positional(l.text) + " " + p.hint("[positional]"))

	case lineError:
		b.WriteString(p.err("! " + l.text))

		if len(l.suggest) > 0 {
			b.WriteString(" " + p.hint("(did you mean "+strings.Join(l.suggest, " or ")+"?)"))
		}

	case lineViolation:
		b.WriteString(p.err("! "+l.text) + " " + p.hint("["+l.key+"]"))
	}

	return b.String()
}

type palette struct {
	option, value, positional, err, hint func(...string) string
}

func identity(s ...string) string { return strings.Join(s, " ") }

var unstyled = &palette{
	option:     identity,
	value:      identity,
	positional: identity,
	err:        identity,
	hint:       identity,
}

var styled = &palette{
	option:     optionStyle.Render,
	value:      valueStyle.Render,
	positional: positionalStyle.Render,
	err:        errorStyle.Render,
	hint:       hintStyle.Render,
}

// renderLines joins the styled form of lines.
func renderLines(lines []line) string {
	if len(lines) == 0 {
		return hintStyle.Render("(no arguments)")
	}

	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.render(styled)
	}

	return strings.Join(parts, "\n")
}
