// Package cli contains the command line interface for commander.
//
// # Commands
//
//   - parse (default): parse the arguments following "--" against an option
//     table and report every matched option, positional argument, error and
//     rule violation, as text, JSON or YAML
//   - usage: print help text generated from an option table
//   - init: write the sample option table, or a configuration file holding
//     the current flag values
//   - repl: explore an option table interactively
//
// Tables are named with --table. A name is looked up in each directory of
// --table-path and then in the user tables directory. Without --table the
// built-in "greet" sample is used.
//
// # Configuration
//
// Flag defaults are read from config.yaml (or config.json) in the user
// config directory, then from COMMANDER_* environment variables. Nested
// YAML keys are joined with "-", so these are equivalent:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time-layout: timestamp format
//   - --log-caller: include caller information
//   - --[no-]log-pretty: colorized output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o commander .
//
// It adds --pprof-mode and --pprof-dir.
//
// # Examples
//
//	commander -- --name Ann -g hello
//	commander parse --format=json --table=mytool -- -v input.txt
//	commander usage --table=mytool
//	commander --log-level=debug repl
package cli
