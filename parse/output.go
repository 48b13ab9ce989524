package parse

import (
	"iter"
	"strings"
)

// Summary aggregates every match of one option in an [Output].
type Summary struct {
	Config *OptionConfig
	// Count is the number of times the option was matched.
	Count int
	// Value and HasValue come from the last match; last match wins.
	Value    string
	HasValue bool
	// Values lists every value consumed by the option, in input order.
	Values []string
}

// Output is the aggregated result of draining an [Iterator].
//
// It owns copies of all matched text and does not depend on the iterator
// or its input once built.
type Output struct {
	found   []Found
	order   []*Summary
	byLong  map[string]*Summary
	byShort map[rune]*Summary
}

// Collect drains it and aggregates the results. It does not stop at errors:
// every [Invalid] result is kept alongside the matches.
func Collect(it *Iterator) *Output {
	out := &Output{
		byLong:  make(map[string]*Summary),
		byShort: make(map[rune]*Summary),
	}

	for f := range it.All() {
		out.add(f)
	}

	return out
}

func (o *Output) add(f Found) {
	o.found = append(o.found, f)

	m, ok := f.(Matched)
	if !ok || m.Config == nil {
		return
	}

	s := o.summary(m.Config)
	if s == nil {
		s = &Summary{Config: m.Config}
		o.order = append(o.order, s)

		if m.Config.Long != "" {
			o.byLong[m.Config.Long] = s
		}

		if m.Config.Short != 0 {
			o.byShort[m.Config.Short] = s
		}
	}

	s.Count++
	s.Value, s.HasValue = m.Value, m.HasValue

	if m.HasValue {
		s.Values = append(s.Values, m.Value)
	}
}

func (o *Output) summary(c *OptionConfig) *Summary {
	if c.Long != "" {
		return o.byLong[c.Long]
	}

	return o.byShort[c.Short]
}

// lookup resolves name to a summary. The name may be spelled "--long",
// "-s", or bare; a bare name is tried as a long name first, then as a short
// name if it is a single character.
func (o *Output) lookup(name string) *Summary {
	h := Classify(name)

	switch h {
	case HyphenLong:
		return o.byLong[h.Name(name)]

	case HyphenShort:
		return o.short(h.Name(name))

	case HyphenNone:
		if s, ok := o.byLong[name]; ok {
			return s
		}

		return o.short(name)

	default:
		return nil
	}
}

func (o *Output) short(name string) *Summary {
	r := []rune(name)
	if len(r) != 1 {
		return nil
	}

	return o.byShort[r[0]]
}

// Found returns every result in input order.
func (o *Output) Found() []Found {
	return append([]Found(nil), o.found...)
}

// Seen reports whether the named option was matched at least once.
func (o *Output) Seen(name string) bool {
	return o.lookup(name) != nil
}

// Count returns the number of times the named option was matched.
func (o *Output) Count(name string) int {
	if s := o.lookup(name); s != nil {
		return s.Count
	}

	return 0
}

// Value returns the value of the last match of the named option.
func (o *Output) Value(name string) (string, bool) {
	if s := o.lookup(name); s != nil && s.HasValue {
		return s.Value, true
	}

	return "", false
}

// Values returns every value consumed by the named option.
func (o *Output) Values(name string) []string {
	if s := o.lookup(name); s != nil {
		return append([]string(nil), s.Values...)
	}

	return nil
}

// Options returns the summary of each matched option, in order of first
// appearance.
func (o *Output) Options() iter.Seq[Summary] {
	return func(yield func(Summary) bool) {
		for _, s := range o.order {
			if !yield(*s) {
				return
			}
		}
	}
}

// Positionals returns the text of every positional result.
func (o *Output) Positionals() []string {
	var args []string

	for _, f := range o.found {
		if p, ok := f.(Positional); ok {
			args = append(args, p.Text)
		}
	}

	return args
}

// Errors returns the error of every invalid result.
func (o *Output) Errors() []*TokenError {
	var errs []*TokenError

	for _, f := range o.found {
		if e, ok := f.(Invalid); ok {
			errs = append(errs, e.Err)
		}
	}

	return errs
}

// OK reports whether no invalid results were collected.
func (o *Output) OK() bool {
	for _, f := range o.found {
		if _, ok := f.(Invalid); ok {
			return false
		}
	}

	return true
}

// String renders the results one per line, for diagnostics.
func (o *Output) String() string {
	var sb strings.Builder

	for _, f := range o.found {
		switch f := f.(type) {
		case Matched:
			sb.WriteString(f.Token)

			if f.HasValue {
				sb.WriteString(" = ")
				sb.WriteString(f.Value)
			}

		case Positional:
			sb.WriteString(f.Text)

		case Invalid:
			sb.WriteString("! ")
			sb.WriteString(f.Err.Error())
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
