package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/pkg"
	"github.com/ardnew/commander/table"
	"github.com/ardnew/commander/usage"
)

// Usage prints the help screen described by an option table.
type Usage struct {
	Source `embed:""`

	Format  string `default:"text" enum:"text,json,yaml" help:"Print help text, or the table itself as ${enum}" short:"f"`
	NoColor bool   `                                     help:"Disable colors"`
	Width   int    `                                     help:"Column where descriptions start (0 fits the widest option)"`
}

// Run executes the usage command.
func (u *Usage) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tbl, err := u.load(ctx)
	if err != nil {
		return err
	}

	w := stdoutFrom(ctx)

	if u.Format != "text" {
		return tbl.Encode(ctx, w, table.Format(u.Format))
	}

	configs, err := tbl.Configs()
	if err != nil {
		return err
	}

	var r usage.Renderer = usage.Text{NoColor: u.NoColor, Width: u.Width}

	app := tbl.Describe(parse.App{Name: pkg.Name})

	if err := r.Render(w, app, configs); err != nil {
		return ErrRender.With(slog.String("app", app.Name)).Wrap(err)
	}

	return nil
}
