package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/commander/log"
	"github.com/ardnew/commander/table"
)

type (
	contextKey    struct{}
	searchPathKey struct{}
	stdinKey      struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithSearchPath returns a new context.Context containing the directories
// searched for option tables by name.
func WithSearchPath(ctx context.Context, path []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, path)
}

func searchPathFrom(ctx context.Context) []string {
	path, _ := ctx.Value(searchPathKey{}).([]string)

	return path
}

// WithStdin returns a new context.Context whose standard input is r.
// Commands read tables named "-" from it.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdoutFrom returns the writer kong was configured with, or [os.Stdout].
func stdoutFrom(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// varFrom returns the kong variable named id.
func varFrom(ctx context.Context, id string) (string, error) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", ErrNoContext.With(slog.String("var", id))
	}

	v, ok := ktx.Model.Vars()[id]
	if !ok {
		return "", ErrNoContext.With(slog.String("var", id))
	}

	return v, nil
}

// stdinSource is the table name that reads from standard input.
const stdinSource = "-"

// Source selects the option table a command works with.
type Source struct {
	Table string `help:"Option table name or file, or '-' for stdin (default: built-in sample)" placeholder:"NAME" short:"t"`
}

func (s Source) load(ctx context.Context) (*table.Table, error) {
	switch s.Table {
	case "":
		log.DebugContext(ctx, "using sample option table")

		return table.Sample(), nil

	case stdinSource:
		return table.Decode(ctx, stdinFrom(ctx))
	}

	file, err := table.Find(s.Table, searchPathFrom(ctx))
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "loading option table", slog.String("file", file))

	return table.Load(ctx, file)
}
