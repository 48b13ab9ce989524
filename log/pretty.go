package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Palette for pretty output. Colors are dropped automatically when the
// output is not a terminal or NO_COLOR is set.
var (
	keyColor    = color.New(color.FgHiBlack)
	stringColor = color.New(color.FgCyan)
	numberColor = color.New(color.FgYellow)
	trueColor   = color.New(color.FgGreen)
	falseColor  = color.New(color.FgRed)
	timeColor   = color.New(color.FgBlue)
	durColor    = color.New(color.FgMagenta)
)

func levelColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case level >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case level >= slog.LevelInfo:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgBlue)
	}
}

// prettyTextHandler writes one colorized "key=value" line per record.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	for _, a := range recordHeader(h.opts, r) {
		h.writeAttr(buf, a)
	}

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if rep := h.opts.ReplaceAttr; rep != nil && a.Value.Kind() != slog.KindGroup {
		a = rep(h.groups, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	v := a.Value.Resolve()

	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			ga.Key = a.Key + "." + ga.Key
			h.writeAttr(buf, ga)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(keyColor.Sprint(a.Key))
	buf.WriteByte('=')
	buf.WriteString(colorValue(a.Key, v))
}

// prettyJSONHandler writes each record as an indented, colorized object.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	buf.WriteString("{")

	first := true

	for _, a := range recordHeader(h.opts, r) {
		h.writeAttr(buf, a, 1, &first)
	}

	for _, a := range h.attrs {
		h.writeAttr(buf, a, 1, &first)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a, 1, &first)

		return true
	})

	buf.WriteString("\n}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	c := *h

	return &c
}

func (h *prettyJSONHandler) writeAttr(
	buf *bytes.Buffer,
	a slog.Attr,
	depth int,
	first *bool,
) {
	if rep := h.opts.ReplaceAttr; rep != nil && a.Value.Kind() != slog.KindGroup {
		a = rep(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if !*first {
		buf.WriteByte(',')
	}

	*first = false

	buf.WriteByte('\n')

	for range depth {
		buf.WriteString("  ")
	}

	buf.WriteString(keyColor.Sprint(strconv.Quote(a.Key)))
	buf.WriteString(": ")

	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		buf.WriteString(colorValue(a.Key, v))

		return
	}

	buf.WriteByte('{')

	inner := true
	for _, ga := range v.Group() {
		h.writeAttr(buf, ga, depth+1, &inner)
	}

	buf.WriteByte('\n')

	for range depth {
		buf.WriteString("  ")
	}

	buf.WriteByte('}')
}

// recordHeader returns the built-in attributes of r in output order.
func recordHeader(opts slog.HandlerOptions, r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)

	if !r.Time.IsZero() {
		attrs = append(attrs, slog.Time(slog.TimeKey, r.Time))
	}

	attrs = append(attrs, slog.Any(slog.LevelKey, r.Level))

	if opts.AddSource {
		if src := r.Source(); src != nil {
			attrs = append(attrs,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	return append(attrs, slog.String(slog.MessageKey, r.Message))
}

func colorValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		if key == slog.LevelKey {
			return levelColor(slog.Level(ParseLevel(v.String()))).Sprint(v.String())
		}

		return stringColor.Sprint(v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return numberColor.Sprint(v.String())

	case slog.KindBool:
		if v.Bool() {
			return trueColor.Sprint("true")
		}

		return falseColor.Sprint("false")

	case slog.KindDuration:
		return durColor.Sprint(v.Duration().String())

	case slog.KindTime:
		return timeColor.Sprint(v.Time().Format(time.RFC3339))

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			return levelColor(level).Sprint(level.String())
		}

		if err, ok := v.Any().(error); ok {
			return falseColor.Sprint(err.Error())
		}
	}

	return stringColor.Sprint(v.String())
}
