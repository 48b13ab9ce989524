package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/commander/log"
	"github.com/ardnew/commander/profile"
	"github.com/ardnew/commander/table"
)

// Init writes the sample option table, or with --config a configuration file
// holding the current flag values.
type Init struct {
	Force  bool   `help:"Overwrite an existing file"                                           short:"f"`
	Config bool   `help:"Write the configuration file (${config}) instead of a table"`
	File   string `arg:""                                                                      help:"Output file; .json selects JSON (default: ${tables}/greet.yaml)" optional:"" type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path, err := i.path(ctx)
	if err != nil {
		return err
	}

	sentinel, content := ErrWriteTable, any(table.Sample())
	if i.Config {
		sentinel, content = ErrWriteConfig, i.settings(ctx)
	}

	format := table.FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = table.FormatJSON
	}

	if _, err := os.Stat(path); err == nil && !i.Force {
		return sentinel.
			With(slog.String("file", path)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = writeFile(path, func(w io.Writer) error {
		return table.Encode(ctx, w, format, content)
	})
	if err != nil {
		return sentinel.With(slog.String("file", path)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized file",
		slog.String("path", path),
		slog.String("format", string(format)),
	)

	return nil
}

func (i *Init) path(ctx context.Context) (string, error) {
	if i.File != "" {
		return i.File, nil
	}

	if i.Config {
		return varFrom(ctx, ConfigIdentifier)
	}

	dir, err := varFrom(ctx, TablesIdentifier)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, table.Sample().App.Name+".yaml"), nil
}

// writeFile creates path and its parent directories and fills it with
// write. A failed write leaves no file behind.
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(path)

		return err
	}

	return file.Close()
}

// settings collects the current value of every top-level flag, keyed by
// flag name. Unset values, help, version and profiling flags are left out.
func (i *Init) settings(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return map[string]any{}
	}

	ignore := []string{"help", "version", profile.Tag}
	values := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || hasAnyPrefix(flag.Name, ignore...) {
			continue
		}

		if v, ok := flagSetting(ktx.FlagValue(flag)); ok {
			values[flag.Name] = v
		}
	}

	return values
}

func hasAnyPrefix(s string, prefix ...string) bool {
	for _, p := range prefix {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}

// flagSetting converts a flag value to its configuration file form.
// Strings, booleans and numbers are kept as is, other scalar types are
// written as their string form. Empty values are dropped.
func flagSetting(v any) (any, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, true

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	default:
		s := fmt.Sprint(v)

		return s, s != ""
	}
}
