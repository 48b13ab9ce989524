package usage

import (
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/commander/parse"
)

// DefaultSuggestions is the number of candidates returned by [Suggest] when
// limit is not positive.
const DefaultSuggestions = 3

// Suggest returns the spellings of options that resemble token, best match
// first. The name after the hyphens is matched as a fuzzy subsequence
// against every short and long name in options.
func Suggest(token string, options []parse.OptionConfig, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	name := parse.Classify(token).Name(token)
	if name == "" {
		return nil
	}

	var names, spellings []string

	for _, o := range options {
		if o.Long != "" {
			names = append(names, o.Long)
			spellings = append(spellings, "--"+o.Long)
		}

		if o.Short != 0 {
			names = append(names, string(o.Short))
			spellings = append(spellings, "-"+string(o.Short))
		}
	}

	var found []string

	for _, m := range fuzzy.Find(name, names) {
		if len(found) == limit {
			break
		}

		found = append(found, spellings[m.Index])
	}

	return found
}
