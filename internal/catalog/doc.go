// Package catalog fronts the remote catalog service with an in-memory
// cache-and-search layer.
//
// The remote service is slow, rate limited, and paginated, so the package
// keeps two process-wide caches:
//   - Cache: key-to-entry cache-aside store for point lookups
//   - NameIndex: a one-shot materialization of the bulk name listing,
//     capped at a fixed size, used for local substring search
//
// Concurrent misses for the same key are collapsed into a single remote
// call via singleflight; failed fetches are never cached, so the next
// caller retries. Neither cache evicts or expires: both are valid for the
// lifetime of the process, an accepted staleness trade-off for this
// catalog's size and churn.
package catalog
