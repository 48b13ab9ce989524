package parse

import "unicode/utf8"

// Match resolves an option token to its entry in configs.
//
// The token must already be classified as h. Short tokens match when the
// text after the hyphen is exactly the configured short name; long tokens
// match on exact, case-sensitive equality with the long name. Match never
// extracts values.
//
// Errors are returned as [*TokenError] with kind [KindEmptyOptionName],
// [KindNoMatch], or [KindAmbiguousConfig].
func Match(
	token string,
	h Hyphenation,
	configs []OptionConfig,
) (*OptionConfig, error) {
	if !h.IsOption() {
		return nil, &TokenError{Kind: KindNoMatch, Token: token}
	}

	name := h.Name(token)
	if name == "" {
		return nil, &TokenError{Kind: KindEmptyOptionName, Token: token}
	}

	var eq func(OptionConfig) bool

	switch h {
	case HyphenShort:
		r, size := utf8.DecodeRuneInString(name)
		if size != len(name) || r == utf8.RuneError {
			return nil, &TokenError{Kind: KindNoMatch, Token: token}
		}

		eq = func(c OptionConfig) bool { return c.Short != 0 && c.Short == r }

	default:
		eq = func(c OptionConfig) bool { return c.Long != "" && c.Long == name }
	}

	var found *OptionConfig

	for i := range configs {
		if !eq(configs[i]) {
			continue
		}

		if found != nil {
			return nil, &TokenError{Kind: KindAmbiguousConfig, Token: token}
		}

		found = &configs[i]
	}

	if found == nil {
		return nil, &TokenError{Kind: KindNoMatch, Token: token}
	}

	return found, nil
}
