package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/caremixer/backend/internal/infrastructure/monitoring"
)

// Service bundles the catalog subsystem behind the three operations the API
// exposes: point lookup, browse, and substring search.
type Service struct {
	client *Client
	cache  *Cache
	index  *NameIndex
	engine *Engine
	logger *zap.Logger
}

// Options configures a Service.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	MaxNames int
	Logger   *zap.Logger
	Metrics  *monitoring.Metrics
}

// NewService wires the client, caches, and search engine together.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	client := NewClient(opts.BaseURL, opts.Timeout, logger).WithMetrics(opts.Metrics)
	cache := NewCache().WithMetrics(opts.Metrics)
	index := NewNameIndex(client, opts.MaxNames).WithMetrics(opts.Metrics)
	engine := NewEngine(index, cache, client, logger)

	return &Service{
		client: client,
		cache:  cache,
		index:  index,
		engine: engine,
		logger: logger,
	}
}

// Lookup resolves a single entry by key through the cache. Remote failures
// propagate: point lookups fail visibly.
func (s *Service) Lookup(ctx context.Context, key string) (Entry, error) {
	return s.cache.GetOrFetch(ctx, key, func(ctx context.Context) (Entry, error) {
		return s.client.FetchEntry(ctx, key)
	})
}

// Search runs a substring search over the materialized name index.
func (s *Service) Search(ctx context.Context, query string, page, limit int) (*Page[Entry], error) {
	return s.engine.Search(ctx, query, page, limit)
}

// Browse returns one live page of the remote listing, resolving each name
// through the entry cache. Total reflects the remote catalog's full count,
// not the fetched window. Names that fail to resolve are dropped, matching
// search's degradation policy.
func (s *Service) Browse(ctx context.Context, page, limit int) (*Page[Entry], error) {
	offset := (page - 1) * limit
	names, total, err := s.client.FetchNames(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entry, err := s.cache.GetOrFetch(ctx, name, func(ctx context.Context) (Entry, error) {
			return s.client.FetchEntry(ctx, name)
		})
		if err != nil {
			s.logger.Warn("dropping unresolvable entry from browse results",
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}

	return &Page[Entry]{
		Items:   entries,
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: page*limit < total,
	}, nil
}

// Stats reports cache occupancy for health reporting.
func (s *Service) Stats() map[string]interface{} {
	return map[string]interface{}{
		"cached_entries": s.cache.Len(),
		"index_loaded":   s.index.Populated(),
	}
}
