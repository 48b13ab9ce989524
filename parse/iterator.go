package parse

import (
	"iter"
	"log/slog"

	"github.com/ardnew/commander/log"
)

// state is the lifecycle of an [Iterator].
type state int

const (
	stateReady state = iota
	stateDone
)

// Option configures an [Iterator].
type Option func(*Iterator)

// WithLogger sets the logger used for trace-level step records.
// Without it, the iterator logs nothing.
func WithLogger(logger log.Logger) Option {
	return func(it *Iterator) {
		it.logger = logger
	}
}

// WithStrictValues controls what happens when a value-taking option is
// followed by another option or by the end of input. By default the option
// is reported without a value. In strict mode an [Invalid] result with
// [KindMissingValue] is reported instead. In both modes the following token
// is left for the next step.
func WithStrictValues(strict bool) Option {
	return func(it *Iterator) {
		it.strict = strict
	}
}

// Iterator walks an [Input] and produces one [Found] per step.
//
// An Iterator is single-use: once [Iterator.Next] reports completion, it
// keeps reporting completion. It is not safe for concurrent use.
type Iterator struct {
	input      *Input
	configs    []OptionConfig
	logger     log.Logger
	state      state
	positional bool // set once "--" has been consumed
	strict     bool
}

// NewIterator validates configs and returns an iterator over tokens.
//
// The returned error is non-nil only if the option table is invalid (see
// [Validate]); bad input tokens never fail construction.
func NewIterator(
	tokens []string,
	configs []OptionConfig,
	opts ...Option,
) (*Iterator, error) {
	if err := Validate(configs); err != nil {
		return nil, err
	}

	it := &Iterator{
		input:   NewInput(tokens),
		configs: configs,
	}

	for _, opt := range opts {
		opt(it)
	}

	it.logger.Trace("iterator ready",
		slog.Int("tokens", len(tokens)),
		slog.Int("options", len(configs)),
		slog.Bool("strict", it.strict),
	)

	return it, nil
}

// Done reports whether the iterator is exhausted.
func (it *Iterator) Done() bool { return it.state == stateDone }

// Next produces the next result. It returns false once the input is
// exhausted, and on every call after that.
func (it *Iterator) Next() (Found, bool) {
	for it.state != stateDone {
		index := it.input.Position()

		tok, ok := it.input.Current()
		if !ok {
			it.state = stateDone
			it.logger.Trace("iterator done", slog.Int("consumed", index))

			return nil, false
		}

		h := Classify(tok)

		switch {
		case it.positional:
			it.input.Advance()

			return it.emit(Positional{Index: index, Text: tok})

		case h == HyphenSeparator:
			it.input.Advance()
			it.positional = true
			it.logger.Trace("separator", slog.Int("index", index))

			continue

		case h == HyphenNone:
			it.input.Advance()

			return it.emit(Positional{Index: index, Text: tok})

		default:
			return it.emit(it.option(index, tok, h))
		}
	}

	return nil, false
}

// option handles a short or long option token at index. It consumes the
// option token and, when the option takes one, its value.
func (it *Iterator) option(index int, tok string, h Hyphenation) Found {
	cfg, err := Match(tok, h, it.configs)
	if err != nil {
		it.input.Advance()

		te, ok := err.(*TokenError)
		if !ok {
			te = &TokenError{Kind: KindNoMatch, Token: tok}
		}

		te.Index = index

		return Invalid{Index: index, Err: te}
	}

	found := Matched{Index: index, Token: tok, Config: cfg}

	if !cfg.TakesValue {
		it.input.Advance()

		return found
	}

	next, ok := it.input.PeekNext()
	it.input.Advance()

	if ok && Classify(next) == HyphenNone {
		it.input.Advance()

		found.Value = next
		found.HasValue = true

		return found
	}

	if it.strict {
		return Invalid{
			Index: index,
			Err:   &TokenError{Kind: KindMissingValue, Token: tok, Index: index},
		}
	}

	return found
}

func (it *Iterator) emit(f Found) (Found, bool) {
	it.logger.Trace("found", slog.Any("result", f))

	return f, true
}

// All returns a sequence that drains the iterator. Breaking out of the loop
// leaves the remaining input for later calls to [Iterator.Next].
func (it *Iterator) All() iter.Seq[Found] {
	return func(yield func(Found) bool) {
		for {
			f, ok := it.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Rest returns a copy of the tokens the iterator has not consumed yet.
func (it *Iterator) Rest() []string {
	return it.input.Rest()
}
