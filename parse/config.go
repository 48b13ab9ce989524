package parse

import (
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// OptionConfig describes one recognized option.
//
// Tables of OptionConfig are built once before parsing and are never
// modified by the engine; results refer back into the caller's table.
type OptionConfig struct {
	// Short is the single-character name matched by "-x". Zero if absent.
	Short rune
	// Long is the word matched by "--word". Empty if absent.
	Long string
	// Description is human-readable help text.
	Description string
	// TakesValue reports whether the option consumes the following token.
	TakesValue bool
}

// Named reports whether c has a short or long name.
func (c OptionConfig) Named() bool {
	return c.Short != 0 || c.Long != ""
}

// Key returns the identity of c used to aggregate results: the long name if
// present, otherwise the short name.
func (c OptionConfig) Key() string {
	if c.Long != "" {
		return c.Long
	}

	if c.Short != 0 {
		return string(c.Short)
	}

	return ""
}

// Names returns the command-line spellings of c, short form first.
func (c OptionConfig) Names() []string {
	names := make([]string, 0, 2)

	if c.Short != 0 {
		names = append(names, shortPrefix+string(c.Short))
	}

	if c.Long != "" {
		names = append(names, longPrefix+c.Long)
	}

	return names
}

// LogValue implements slog.LogValuer.
func (c OptionConfig) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)

	if c.Short != 0 {
		attrs = append(attrs, slog.String("short", string(c.Short)))
	}

	if c.Long != "" {
		attrs = append(attrs, slog.String("long", c.Long))
	}

	return slog.GroupValue(append(attrs, slog.Bool("value", c.TakesValue))...)
}

// Validate checks a table for configuration-authoring errors: options
// without any name, short names that are not a single printable character,
// and names used by more than one option.
func Validate(configs []OptionConfig) error {
	shorts := make(map[rune]int, len(configs))
	longs := make(map[string]int, len(configs))

	for i, c := range configs {
		if !c.Named() {
			return ErrUnnamedOption.With(slog.Int("option", i))
		}

		if c.Short != 0 {
			if !validShort(c.Short) {
				return ErrInvalidShortName.With(
					slog.Int("option", i),
					slog.String("short", strconv.QuoteRune(c.Short)),
				)
			}

			if j, ok := shorts[c.Short]; ok {
				return ErrAmbiguousConfig.With(
					slog.String("name", shortPrefix+string(c.Short)),
					slog.Int("first", j),
					slog.Int("second", i),
				)
			}

			shorts[c.Short] = i
		}

		if c.Long != "" {
			if j, ok := longs[c.Long]; ok {
				return ErrAmbiguousConfig.With(
					slog.String("name", longPrefix+c.Long),
					slog.Int("first", j),
					slog.Int("second", i),
				)
			}

			longs[c.Long] = i
		}
	}

	return nil
}

// validShort reports whether r can be spelled as "-r" and read back as a
// short option.
func validShort(r rune) bool {
	return r != '-' && r != utf8.RuneError && strconv.IsPrint(r) && r != ' '
}
