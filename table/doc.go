// Package table loads option tables: declarative descriptions of a
// program's options, stored as YAML or JSON, that build the
// [parse.OptionConfig] slices the parse engine consumes.
//
// A table may also carry rules, boolean expressions evaluated against a
// [parse.Output] after parsing:
//
//	app:
//	  name: greet
//	options:
//	  - short: n
//	    long: name
//	    value: true
//	    description: who to greet
//	rules:
//	  - name: name-given
//	    expr: seen("name") || seen("help")
//	    message: a name is required
//
// Tables are found by name along a search path built with [SearchPath].
// [Decode] remembers every document it has decoded, so loading the same
// table again only costs a hash of its bytes.
package table
