//go:generate go tool stringer --linecomment --type Hyphenation --output hyphenation_string.go

package parse

import "strings"

// Hyphenation is the leading-hyphen shape of a raw token.
type Hyphenation int

const (
	// HyphenNone marks a token that does not start with a hyphen.
	HyphenNone Hyphenation = iota // none
	// HyphenShort marks a token with exactly one leading hyphen.
	// A lone "-" is short with an empty name.
	HyphenShort // short
	// HyphenLong marks a token with two leading hyphens followed by text.
	// Any hyphen beyond the second belongs to the name.
	HyphenLong // long
	// HyphenSeparator marks the bare "--" token.
	HyphenSeparator // separator
)

const (
	shortPrefix = "-"
	longPrefix  = "--"
)

// Classify returns the hyphenation of token.
// It is total: every string, including "", has a classification.
func Classify(token string) Hyphenation {
	switch {
	case token == longPrefix:
		return HyphenSeparator

	case strings.HasPrefix(token, longPrefix):
		return HyphenLong

	case strings.HasPrefix(token, shortPrefix):
		return HyphenShort

	default:
		return HyphenNone
	}
}

// Name returns the option name text of token for hyphenation h, which is
// the token without its one or two leading hyphens.
// It returns "" for [HyphenNone] and [HyphenSeparator].
func (h Hyphenation) Name(token string) string {
	switch h {
	case HyphenShort:
		return strings.TrimPrefix(token, shortPrefix)

	case HyphenLong:
		return strings.TrimPrefix(token, longPrefix)

	default:
		return ""
	}
}

// IsOption reports whether h denotes a short or long option token.
func (h Hyphenation) IsOption() bool {
	return h == HyphenShort || h == HyphenLong
}
