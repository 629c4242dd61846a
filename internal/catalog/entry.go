package catalog

// Entry is one item of the remote catalog. Name doubles as the cache key
// and is always lowercase. Entries are immutable once cached; a refresh
// replaces the value wholesale rather than mutating in place.
type Entry struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Height   int      `json:"height"`
	Weight   int      `json:"weight"`
	Types    []string `json:"types"`
	ImageURL *string  `json:"image_url,omitempty"`
}

// Page is a window over an ordered result set.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}
