package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/commander/pkg"
)

// resolveYAML returns a [kong.ConfigurationLoader] for YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveYAML(ctx), "/path/to/config.yaml")
//
// The document must be a mapping. Keys are flag names, written with hyphens
// or underscores. Nested mappings are joined to their parent key with a
// hyphen, so these two documents are equivalent:
//
//	log-level: debug
//	log_pretty: false
//
//	log:
//	  level: debug
//	  pretty: false
//
// Sequences become comma-separated lists. An empty document sets nothing.
// Command-line flags override config file values.
func resolveYAML(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, pkg.ErrDecodeConfig.Wrap(err)
		}

		c := make(config)

		if len(bytes.TrimSpace(data)) == 0 {
			return c, nil
		}

		var doc map[string]any

		err = yaml.UnmarshalContext(ctx, data, &doc)
		if err != nil {
			return nil, pkg.ErrDecodeConfig.Wrap(err)
		}

		c.flatten("", doc)

		return c, nil
	}
}

// config implements [kong.Resolver] over flattened config file values.
type config map[string]any

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: let kong use defaults.
	return nil, nil
}

func (c config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := value.(type) {
		case map[string]any:
			c.flatten(key, v)

		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = scalar(item)
			}

			c[key] = strings.Join(items, ",")

		case bool, string:
			c[key] = v

		case nil:
			// null leaves the flag unset

		default:
			c[key] = scalar(v)
		}
	}
}

// scalar formats a decoded YAML scalar the way kong parses flag values.
// Kong requires numbers as strings.
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
