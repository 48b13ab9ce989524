package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func plain(buf *bytes.Buffer, opts ...Option) Logger {
	return Make(buf, append([]Option{
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"),
	}, opts...)...)
}

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", line, err)
	}

	return m
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var l Logger

	l.Trace("nothing")
	l.Info("nothing", slog.Int("n", 1))
	l.Error("nothing")

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Enabled(t.Context(), LevelError) {
		t.Error("zero logger reports enabled")
	}

	if w := l.With(slog.String("k", "v")); w.Logger != nil {
		t.Error("With on zero logger allocated a handler")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := plain(&buf, WithLevel(LevelWarn))

	l.Debug("hidden")
	l.Info("hidden")

	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}

	l.Warn("shown")

	if got := decode(t, buf.Bytes())["level"]; got != "WARN" {
		t.Errorf("level = %v, want WARN", got)
	}
}

func TestLogger_Trace_UsesCustomName(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithLevel(LevelTrace)).Trace("step")

	if got := decode(t, buf.Bytes())["level"]; got != "TRACE" {
		t.Errorf("level = %v, want TRACE", got)
	}
}

func TestLogger_With_AddsAttrs(t *testing.T) {
	var buf bytes.Buffer

	l := plain(&buf).With(slog.String("component", "parse"))
	l.Info("hello", slog.Int("n", 3))

	m := decode(t, buf.Bytes())
	if m["component"] != "parse" || m["n"] != float64(3) {
		t.Errorf("unexpected record: %v", m)
	}
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer

	base := plain(&buf)
	wrapped := base.Wrap(WithLevel(LevelError), WithFormat(FormatText))

	if base.Level() != LevelInfo {
		t.Errorf("base level changed to %v", base.Level())
	}

	if wrapped.Level() != LevelError || wrapped.Format() != FormatText {
		t.Errorf("wrapped = %v/%v", wrapped.Level(), wrapped.Format())
	}
}

func TestLogger_Caller_PointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer

	plain(&buf, WithCaller(true)).Info("where")

	src, _ := decode(t, buf.Bytes())["source"].(map[string]any)
	if file, _ := src["file"].(string); !strings.HasSuffix(file, "log_test.go") {
		t.Errorf("source = %v, want log_test.go", src)
	}
}

func TestLogger_Pretty_Text(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithTimeLayout("none"))
	l.Info("pretty", slog.Group("opt", slog.String("long", "name")))

	out := buf.String()
	for _, want := range []string{"msg", "pretty", "opt.long", "name", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_Pretty_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(true), WithFormat(FormatJSON), WithTimeLayout("none"))
	l.Warn("pretty", slog.Bool("ok", false))

	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("unexpected framing: %q", out)
	}

	if !strings.Contains(out, `"ok"`) || !strings.Contains(out, "false") {
		t.Errorf("missing attribute: %q", out)
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var (
		buf bytes.Buffer
		wg  sync.WaitGroup
	)

	l := Make(&buf, WithPretty(true))

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			l.With(slog.Int("worker", i)).Info("tick")
			_ = l.Level()
		}()
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 8 {
		t.Errorf("got %d lines, want 8", got)
	}
}
