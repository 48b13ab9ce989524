package table

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/commander/log"
	"github.com/ardnew/commander/pkg"
)

// cache stores decoded tables keyed by the xxh3 hash of their source.
var cache sync.Map

type entry struct {
	once  sync.Once
	table *Table
	err   error
}

// readAll reads r with asynchronous read-ahead.
func readAll(r io.Reader) ([]byte, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, pkg.ErrReadTable.Wrap(err)
	}

	return data, nil
}

// decodeCached decodes data once per distinct content and returns a copy of
// the cached table, so callers may modify the result. Only successful
// decodes stay cached.
func decodeCached(ctx context.Context, data []byte) (*Table, error) {
	sum := xxh3.Hash(data)

	value, hit := cache.LoadOrStore(sum, new(entry))
	e := value.(*entry)

	log.TraceContext(ctx, "table cache lookup",
		slog.String("hash", strconv.FormatUint(sum, 16)),
		slog.Int("bytes", len(data)),
		slog.Bool("hit", hit),
	)

	e.once.Do(func() { e.table, e.err = decode(ctx, data) })

	if e.err != nil {
		// Failures are not remembered; the next call decodes again.
		cache.CompareAndDelete(sum, e)

		return nil, e.err
	}

	return e.table.clone(), nil
}

func (t *Table) clone() *Table {
	c := *t
	c.Options = slices.Clone(t.Options)
	c.Rules = slices.Clone(t.Rules)

	return &c
}

// ClearCache discards all decoded tables and compiled rules.
func ClearCache() {
	cache.Clear()
	programs.Clear()
}
