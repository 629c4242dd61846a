package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/caremixer/backend/internal/infrastructure/monitoring"
)

// DefaultMaxNames caps the bulk name listing. The listing is size-bounded,
// not exhaustive: names beyond the cap are simply not searchable.
const DefaultMaxNames = 1000

// NameIndex lazily materializes the remote bulk name listing so substring
// search runs locally instead of issuing per-query remote calls. The
// listing is fetched once, on first use, and never refreshed: entries added
// to the remote catalog afterwards stay invisible until restart.
type NameIndex struct {
	client *Client
	max    int

	mu      sync.RWMutex
	names   []string
	loaded  bool
	group   singleflight.Group
	metrics *monitoring.Metrics
}

// NewNameIndex creates an unpopulated index backed by client. A max of
// zero or less falls back to DefaultMaxNames.
func NewNameIndex(client *Client, max int) *NameIndex {
	if max <= 0 {
		max = DefaultMaxNames
	}
	return &NameIndex{client: client, max: max}
}

// WithMetrics attaches a metrics collector.
func (n *NameIndex) WithMetrics(m *monitoring.Metrics) *NameIndex {
	n.metrics = m
	return n
}

// Names returns the cached name listing, fetching it on first call.
// Population failure leaves the index empty and propagates the error; the
// next call retries. Concurrent first calls collapse into one fetch.
func (n *NameIndex) Names(ctx context.Context) ([]string, error) {
	n.mu.RLock()
	if n.loaded {
		names := n.names
		n.mu.RUnlock()
		n.recordHit()
		return names, nil
	}
	n.mu.RUnlock()
	n.recordMiss()

	v, err, _ := n.group.Do("names", func() (interface{}, error) {
		n.mu.RLock()
		if n.loaded {
			names := n.names
			n.mu.RUnlock()
			return names, nil
		}
		n.mu.RUnlock()

		names, _, err := n.client.FetchNames(ctx, 0, n.max)
		if err != nil {
			return nil, err
		}

		n.mu.Lock()
		n.names = names
		n.loaded = true
		n.mu.Unlock()
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// Populated reports whether the index holds a listing.
func (n *NameIndex) Populated() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.loaded
}

func (n *NameIndex) recordHit() {
	if n.metrics != nil {
		n.metrics.RecordCacheHit("name_index")
	}
}

func (n *NameIndex) recordMiss() {
	if n.metrics != nil {
		n.metrics.RecordCacheMiss("name_index")
	}
}
