package cmd

import (
	"context"

	"github.com/ardnew/commander/cli/cmd/repl"
	"github.com/ardnew/commander/log"
)

// Repl starts the interactive parser playground.
type Repl struct {
	Source `embed:""`

	Strict bool `help:"Report value-taking options without a value as errors"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tbl, err := r.load(ctx)
	if err != nil {
		return err
	}

	cacheDir, err := varFrom(ctx, CacheIdentifier)
	if err != nil {
		return err
	}

	return repl.Run(ctx, tbl, cacheDir, r.Strict, log.Default())
}
