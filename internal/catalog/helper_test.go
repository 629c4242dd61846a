package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeCatalog is an httptest stand-in for the remote catalog service. It
// serves the bulk listing at / and entry details at /{name}, and counts
// calls so tests can assert on remote traffic.
type fakeCatalog struct {
	t *testing.T

	mu         sync.Mutex
	names      []string
	failing    map[string]bool
	listCalls  int
	entryCalls map[string]int

	srv *httptest.Server
}

func newFakeCatalog(t *testing.T, names ...string) *fakeCatalog {
	f := &fakeCatalog{
		t:          t,
		names:      names,
		failing:    make(map[string]bool),
		entryCalls: make(map[string]int),
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeCatalog) url() string { return f.srv.URL }

func (f *fakeCatalog) fail(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[name] = true
}

func (f *fakeCatalog) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeCatalog) entryCallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entryCalls[name]
}

func (f *fakeCatalog) handle(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	if name == "" {
		f.handleList(w, r)
		return
	}

	f.mu.Lock()
	f.entryCalls[name]++
	failing := f.failing[name]
	idx := -1
	for i, n := range f.names {
		if n == name {
			idx = i
			break
		}
	}
	f.mu.Unlock()

	if failing {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if idx < 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	art := "https://img.example/" + name + ".png"
	payload := map[string]interface{}{
		"id":     idx + 1,
		"name":   name,
		"height": 7,
		"weight": 69,
		"types": []map[string]interface{}{
			{"type": map[string]string{"name": "grass"}},
			{"type": map[string]string{"name": "poison"}},
		},
		"sprites": map[string]interface{}{
			"other": map[string]interface{}{
				"official-artwork": map[string]interface{}{
					"front_default": art,
				},
			},
		},
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		f.t.Errorf("encode detail payload: %v", err)
	}
}

func (f *fakeCatalog) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	names := append([]string(nil), f.names...)
	f.mu.Unlock()

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	start := offset
	if start > len(names) {
		start = len(names)
	}
	end := start + limit
	if end > len(names) {
		end = len(names)
	}

	results := make([]map[string]string, 0, end-start)
	for _, n := range names[start:end] {
		results = append(results, map[string]string{"name": n})
	}

	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"count":   len(names),
		"results": results,
	}); err != nil {
		f.t.Errorf("encode list payload: %v", err)
	}
}
