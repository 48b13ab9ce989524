// Package repl is an interactive playground for option tables.
//
// Each line typed in parse mode is split on whitespace and run through the
// parser; every result is printed on its own line. Esc toggles a command
// mode with help, list, rules, strict, clear, and quit. Input history is
// kept in a file under the cache directory.
package repl
