// Package parse is the command-line argument parsing engine.
//
// Given the raw argument tokens of a process (program name excluded) and a
// table of [OptionConfig] entries, the engine classifies every token by its
// leading hyphens, resolves option names against the table, attaches values
// to options that take one, and yields one [Found] result per logical unit.
//
// # Pipeline
//
//	tokens → Input → Iterator (Classify + Match + table) → Found… → Output
//
// The [Iterator] is a pull-based, finite, non-restartable sequence. Each call
// to [Iterator.Next] produces one result or reports completion:
//
//	it, err := parse.NewIterator(os.Args[1:], options)
//	if err != nil {
//		return err // the option table itself is invalid
//	}
//
//	for found := range it.All() {
//		switch f := found.(type) {
//		case parse.Matched:
//			fmt.Println(f.Config.Key(), f.Value)
//		case parse.Positional:
//			fmt.Println("arg", f.Text)
//		case parse.Invalid:
//			fmt.Println("error", f.Err)
//		}
//	}
//
// Or drain everything at once with [Collect]:
//
//	out := parse.Collect(it)
//	if name, ok := out.Value("name"); ok {
//		fmt.Println("hello,", name)
//	}
//
// # Errors
//
// Two kinds of errors exist. A malformed option table (duplicate names,
// options without any name) is reported by [NewIterator] as an [*Error] and
// no parsing happens. Bad input tokens are reported as [Invalid] results
// carrying a [*TokenError]; the run continues so every problem can be
// reported in one pass.
//
// # Separator
//
// The token "--" switches the iterator into positional-only mode for the
// rest of the run. The separator itself produces no result.
package parse
