package parse

import "log/slog"

// Found is one result produced by the [Iterator]: exactly one of [Matched],
// [Positional], or [Invalid]. The set is closed; use a type switch.
type Found interface {
	slog.LogValuer

	// Pos returns the input index of the token that defined the result.
	Pos() int

	found()
}

// Matched is a recognized option, with its value if it takes one.
type Matched struct {
	// Index is the position of the option token in the input.
	Index int
	// Token is the raw option token as written, e.g. "-n" or "--name".
	Token string
	// Config refers into the caller's option table.
	Config *OptionConfig
	// Value is the consumed value token. Valid only if HasValue.
	Value    string
	HasValue bool
}

// Positional is a token that is neither an option nor an option's value.
type Positional struct {
	Index int
	Text  string
}

// Invalid is an option token that could not be resolved.
type Invalid struct {
	Index int
	Err   *TokenError
}

func (Matched) found()    {}
func (Positional) found() {}
func (Invalid) found()    {}

func (f Matched) Pos() int    { return f.Index }
func (f Positional) Pos() int { return f.Index }
func (f Invalid) Pos() int    { return f.Index }

// LogValue implements slog.LogValuer.
func (f Matched) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "option"),
		slog.Int("index", f.Index),
		slog.String("token", f.Token),
	}

	if f.Config != nil {
		attrs = append(attrs, slog.String("key", f.Config.Key()))
	}

	if f.HasValue {
		attrs = append(attrs, slog.String("value", f.Value))
	}

	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (f Positional) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "positional"),
		slog.Int("index", f.Index),
		slog.String("text", f.Text),
	)
}

// LogValue implements slog.LogValuer.
func (f Invalid) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "error"),
		slog.Int("index", f.Index),
	}

	if f.Err != nil {
		attrs = append(attrs,
			slog.String("kind", f.Err.Kind.String()),
			slog.String("token", f.Err.Token),
		)
	}

	return slog.GroupValue(attrs...)
}
