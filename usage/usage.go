// Package usage renders help text for an option table.
//
// The parse engine only exposes its option table and program descriptor as
// data; everything about how help looks lives here.
package usage

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/ardnew/commander/parse"
)

// Renderer writes human-readable help for a program and its options.
type Renderer interface {
	Render(w io.Writer, app parse.App, options []parse.OptionConfig) error
}

// Text renders a conventional terminal help screen.
type Text struct {
	// NoColor disables styling regardless of the terminal.
	NoColor bool
	// Width is the column at which descriptions start. Zero picks the
	// narrowest column that fits every option.
	Width int
}

var _ Renderer = Text{}

// styles returns the palette for one render.
func (t Text) styles() (title, heading, name, dim *color.Color) {
	title = color.New(color.Bold)
	heading = color.New(color.FgYellow, color.Bold)
	name = color.New(color.FgCyan)
	dim = color.New(color.Faint)

	if t.NoColor {
		for _, c := range []*color.Color{title, heading, name, dim} {
			c.DisableColor()
		}
	}

	return title, heading, name, dim
}

// Render implements [Renderer].
func (t Text) Render(w io.Writer, app parse.App, options []parse.OptionConfig) error {
	title, heading, name, dim := t.styles()

	var sb strings.Builder

	header := app.Name
	if app.Version != "" {
		header += " " + app.Version
	}

	if header != "" {
		sb.WriteString(title.Sprint(header))
		sb.WriteByte('\n')
	}

	if app.About != "" {
		sb.WriteString(app.About)
		sb.WriteByte('\n')
	}

	if sb.Len() > 0 {
		sb.WriteByte('\n')
	}

	sb.WriteString(heading.Sprint("Usage:"))
	sb.WriteString(" " + Synopsis(app, options) + "\n")

	if len(options) > 0 {
		sb.WriteString("\n" + heading.Sprint("Options:") + "\n")

		labels := make([]string, len(options))
		width := t.Width

		for i, o := range options {
			labels[i] = Label(o)
			if t.Width == 0 {
				width = max(width, utf8.RuneCountInString(labels[i]))
			}
		}

		for i, o := range options {
			pad := max(width-utf8.RuneCountInString(labels[i]), 0)

			sb.WriteString("  " + name.Sprint(labels[i]))

			if o.Description != "" {
				sb.WriteString(strings.Repeat(" ", pad+2) + o.Description)
			}

			sb.WriteByte('\n')
		}
	}

	var footer []string

	if app.Author != "" {
		footer = append(footer, app.Author)
	}

	if app.Copyright != "" {
		footer = append(footer, app.Copyright)
	}

	if len(footer) > 0 {
		sb.WriteString("\n" + dim.Sprint(strings.Join(footer, "\n")) + "\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// Label returns the option column text for o, e.g. "-n, --name <VALUE>".
// Options without a short name are indented to line up with those that
// have one.
func Label(o parse.OptionConfig) string {
	var label string

	switch {
	case o.Short != 0 && o.Long != "":
		label = fmt.Sprintf("-%c, --%s", o.Short, o.Long)
	case o.Short != 0:
		label = fmt.Sprintf("-%c", o.Short)
	default:
		label = "    --" + o.Long
	}

	if o.TakesValue {
		label += " <VALUE>"
	}

	return label
}

// Synopsis returns the one-line usage summary of a program.
func Synopsis(app parse.App, options []parse.OptionConfig) string {
	parts := []string{app.Name}
	if app.Name == "" {
		parts[0] = "PROGRAM"
	}

	if len(options) > 0 {
		parts = append(parts, "[OPTIONS]")
	}

	return strings.Join(append(parts, "[--] [ARGS...]"), " ")
}
