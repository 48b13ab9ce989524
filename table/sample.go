package table

// Sample returns the table written by "commander init": the options of a
// small greeting program.
func Sample() *Table {
	return &Table{
		App: App{
			Name:  "greet",
			About: "Print a greeting",
		},
		Options: []Option{
			{Short: "n", Long: "name", Description: "name of the person to greet", Value: true},
			{Short: "g", Long: "greeting", Description: "greeting to use instead of hello", Value: true},
			{Short: "i", Long: "interactive", Description: "prompt for the name"},
			{Short: "h", Long: "help", Description: "show this help"},
		},
		Rules: []Rule{
			{
				Name:    "name-or-prompt",
				Expr:    `seen("name") || seen("interactive") || seen("help")`,
				Message: "either --name or --interactive is required",
			},
			{
				Name:    "no-arguments",
				Expr:    `len(positionals) == 0`,
				Message: "greet takes no positional arguments",
			},
		},
	}
}
