package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Engine performs substring search over the cached name index, resolving
// matches through the entry cache.
type Engine struct {
	index  *NameIndex
	cache  *Cache
	client *Client
	logger *zap.Logger
}

// NewEngine creates a search engine over the given index and cache.
func NewEngine(index *NameIndex, cache *Cache, client *Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{index: index, cache: cache, client: client, logger: logger}
}

// Search filters the name index by case-insensitive substring match and
// resolves the survivors to entries, in index order. An empty query matches
// every name; a query matching nothing yields an empty page, not an error.
//
// Per-name resolution failures are swallowed by policy: the failing name is
// dropped and the rest of the result survives. A partial result beats a
// total failure caused by one bad entry.
func (e *Engine) Search(ctx context.Context, query string, page, limit int) (*Page[Entry], error) {
	names, err := e.index.Names(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]string, 0, len(names))
	for _, name := range names {
		if q == "" || strings.Contains(strings.ToLower(name), q) {
			matched = append(matched, name)
		}
	}

	entries := make([]Entry, 0, len(matched))
	for _, name := range matched {
		entry, err := e.cache.GetOrFetch(ctx, name, func(ctx context.Context) (Entry, error) {
			return e.client.FetchEntry(ctx, name)
		})
		if err != nil {
			e.logger.Warn("dropping unresolvable entry from search results",
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}

	result := Paginate(entries, page, limit)
	return &result, nil
}
