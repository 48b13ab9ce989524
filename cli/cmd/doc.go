// Package cmd implements the commander subcommands: parse, usage, init, and
// repl.
//
// Commands receive the [kong.Context] and the table search path through the
// [context.Context] passed to their Run method. See [WithContext] and
// [WithSearchPath].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// TablesIdentifier is the kong variable identifier containing the
	// directory where init writes new option tables.
	TablesIdentifier = "tables"
)
