package parse

// Input is a positioned view over the raw token sequence.
//
// The cursor only moves forward. Once it passes the last token the input is
// exhausted and stays exhausted.
type Input struct {
	tokens []string
	cursor int
}

// NewInput returns an Input positioned at the first of tokens.
// The slice is borrowed, not copied.
func NewInput(tokens []string) *Input {
	return &Input{tokens: tokens}
}

// Current returns the token under the cursor.
func (in *Input) Current() (string, bool) {
	return in.at(in.cursor)
}

// Advance returns the token under the cursor and moves past it.
// Advancing an exhausted input is a no-op that reports false.
func (in *Input) Advance() (string, bool) {
	tok, ok := in.at(in.cursor)
	if ok {
		in.cursor++
	}

	return tok, ok
}

// PeekNext returns the token after the cursor without moving.
func (in *Input) PeekNext() (string, bool) {
	return in.at(in.cursor + 1)
}

// Position returns the index of the token under the cursor.
func (in *Input) Position() int { return in.cursor }

// Len returns the total number of tokens.
func (in *Input) Len() int { return len(in.tokens) }

// Exhausted reports whether every token has been consumed.
func (in *Input) Exhausted() bool { return in.cursor >= len(in.tokens) }

// Rest returns a copy of the unconsumed tokens.
func (in *Input) Rest() []string {
	if in.Exhausted() {
		return nil
	}

	return append([]string(nil), in.tokens[in.cursor:]...)
}

func (in *Input) at(i int) (string, bool) {
	if i < 0 || i >= len(in.tokens) {
		return "", false
	}

	return in.tokens[i], true
}
