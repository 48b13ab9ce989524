package table

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/pkg"
)

// Format is an encoding of a table or parse result.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatJSON}

// App mirrors [parse.App] with serialization tags.
type App struct {
	Name      string `json:"name"                yaml:"name"`
	About     string `json:"about,omitempty"     yaml:"about,omitempty"`
	Version   string `json:"version,omitempty"   yaml:"version,omitempty"`
	Author    string `json:"author,omitempty"    yaml:"author,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// Option is one entry of a table. Short is a string so that tables stay
// readable; it must hold exactly one character when set.
type Option struct {
	Short       string `json:"short,omitempty"       yaml:"short,omitempty"`
	Long        string `json:"long,omitempty"        yaml:"long,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Value       bool   `json:"value,omitempty"       yaml:"value,omitempty"`
}

// Table is a decoded option table.
type Table struct {
	App     App      `json:"app"             yaml:"app"`
	Options []Option `json:"options"         yaml:"options"`
	Rules   []Rule   `json:"rules,omitempty" yaml:"rules,omitempty"`
	// Strict makes value-taking options without a value parse errors.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// Decode reads a YAML or JSON table from r and validates it.
// Unknown fields are rejected. Identical documents are decoded only once.
func Decode(ctx context.Context, r io.Reader) (*Table, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	return decodeCached(ctx, data)
}

func decode(ctx context.Context, data []byte) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, pkg.ErrDecodeTable.Wrapf("empty document")
	}

	var t Table

	if err := yaml.UnmarshalContext(ctx, data, &t, yaml.DisallowUnknownField()); err != nil {
		return nil, pkg.ErrDecodeTable.Wrap(err)
	}

	if _, err := t.Configs(); err != nil {
		return nil, err
	}

	if _, err := t.Compile(); err != nil {
		return nil, err
	}

	return &t, nil
}

// Load reads and decodes the table at path.
func Load(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadTable.Wrap(err)
	}
	defer f.Close()

	t, err := Decode(ctx, f)
	if err != nil {
		return nil, pkg.MakeError(err).Wrapf("%s", path)
	}

	return t, nil
}

// Configs converts the table's options to the engine's representation and
// validates the result with [parse.Validate].
func (t *Table) Configs() ([]parse.OptionConfig, error) {
	configs := make([]parse.OptionConfig, len(t.Options))

	for i, o := range t.Options {
		c, err := o.config()
		if err != nil {
			return nil, pkg.ErrDecodeTable.Wrap(err)
		}

		configs[i] = c
	}

	if err := parse.Validate(configs); err != nil {
		return nil, pkg.ErrDecodeTable.Wrap(err)
	}

	return configs, nil
}

func (o Option) config() (parse.OptionConfig, error) {
	c := parse.OptionConfig{
		Long:        strings.TrimLeft(o.Long, "-"),
		Description: o.Description,
		TakesValue:  o.Value,
	}

	if short := strings.TrimPrefix(o.Short, "-"); short != "" {
		r, size := utf8.DecodeRuneInString(short)
		if size != len(short) {
			return c, parse.ErrInvalidShortName.
				With(slog.String("short", o.Short)).
				Wrap(fmt.Errorf("%q is not a single character", short))
		}

		c.Short = r
	}

	return c, nil
}

// Describe returns the table's program descriptor. Empty fields fall back
// to those of def.
func (t *Table) Describe(def parse.App) parse.App {
	return parse.App{
		Name:      cmp.Or(t.App.Name, def.Name),
		About:     cmp.Or(t.App.About, def.About),
		Version:   cmp.Or(t.App.Version, def.Version),
		Author:    cmp.Or(t.App.Author, def.Author),
		Copyright: cmp.Or(t.App.Copyright, def.Copyright),
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", pkg.ErrInvalidFormat.Wrapf("%q (valid: %v)", s, Formats)
	}

	return f, nil
}

// Encode writes v as YAML or JSON.
func Encode(ctx context.Context, w io.Writer, format Format, v any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.MarshalContext(ctx, v, yaml.Indent(2), yaml.IndentSequence(true))

	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')

	default:
		return pkg.ErrInvalidFormat.Wrapf("%q (valid: %v)", format, Formats)
	}

	if err != nil {
		return pkg.ErrEncodeTable.Wrap(err)
	}

	if _, err := w.Write(data); err != nil {
		return pkg.ErrEncodeTable.Wrap(err)
	}

	return nil
}

// Encode writes t as YAML or JSON.
func (t *Table) Encode(ctx context.Context, w io.Writer, format Format) error {
	return Encode(ctx, w, format, t)
}
