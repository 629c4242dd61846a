package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/caremixer/backend/internal/infrastructure/monitoring"
)

// DefaultTimeout bounds every remote call. There is no retry or backoff:
// a failed call surfaces immediately and the caller decides whether to
// issue another request.
const DefaultTimeout = 10 * time.Second

// Client issues bounded-timeout requests against the remote catalog
// service. It performs no caching; that is the caller's responsibility.
type Client struct {
	resty   *resty.Client
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewClient creates a client for the catalog service rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", "caremixer-backend/1.0").
		SetHeader("Accept", "application/json")

	return &Client{resty: rc, logger: logger}
}

// WithMetrics attaches a metrics collector.
func (c *Client) WithMetrics(m *monitoring.Metrics) *Client {
	c.metrics = m
	return c
}

// detailPayload mirrors the remote per-entry schema. Only the fields the
// Entry model needs are decoded.
type detailPayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		Other map[string]struct {
			FrontDefault *string `json:"front_default"`
		} `json:"other"`
	} `json:"sprites"`
}

// listPayload mirrors the remote bulk-listing schema.
type listPayload struct {
	Count   int `json:"count"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// FetchEntry retrieves a single entry by key. The key is lowercased before
// the request so remote addressing matches cache addressing. Returns
// ErrNotFound for 404s, ErrTimeout for deadline expiry, and *RemoteError
// for any other non-2xx response.
func (c *Client) FetchEntry(ctx context.Context, key string) (Entry, error) {
	name := strings.ToLower(strings.TrimSpace(key))
	start := time.Now()

	resp, err := c.resty.R().SetContext(ctx).Get("/" + url.PathEscape(name))
	if err != nil {
		c.record("entry", "error", start)
		return Entry{}, classifyTransport(err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		c.record("entry", "not_found", start)
		return Entry{}, ErrNotFound
	case resp.IsError():
		c.record("entry", "error", start)
		return Entry{}, &RemoteError{StatusCode: resp.StatusCode()}
	}

	var payload detailPayload
	if err := sonic.Unmarshal(resp.Body(), &payload); err != nil {
		c.record("entry", "error", start)
		return Entry{}, fmt.Errorf("catalog: decode entry %q: %w", name, err)
	}

	entry := Entry{
		ID:     payload.ID,
		Name:   payload.Name,
		Height: payload.Height,
		Weight: payload.Weight,
		Types:  make([]string, 0, len(payload.Types)),
	}
	for _, t := range payload.Types {
		entry.Types = append(entry.Types, t.Type.Name)
	}
	if art, ok := payload.Sprites.Other["official-artwork"]; ok {
		entry.ImageURL = art.FrontDefault
	}

	c.record("entry", "ok", start)
	c.logger.Debug("fetched catalog entry",
		zap.String("name", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return entry, nil
}

// FetchNames retrieves a window of the bulk name listing along with the
// remote total. Ordering follows the remote catalog's own ordering.
func (c *Client) FetchNames(ctx context.Context, offset, count int) ([]string, int, error) {
	start := time.Now()

	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(count)).
		Get("/")
	if err != nil {
		c.record("names", "error", start)
		return nil, 0, classifyTransport(err)
	}
	if resp.IsError() {
		c.record("names", "error", start)
		return nil, 0, &RemoteError{StatusCode: resp.StatusCode()}
	}

	var payload listPayload
	if err := sonic.Unmarshal(resp.Body(), &payload); err != nil {
		c.record("names", "error", start)
		return nil, 0, fmt.Errorf("catalog: decode name listing: %w", err)
	}

	names := make([]string, 0, len(payload.Results))
	for _, r := range payload.Results {
		names = append(names, r.Name)
	}

	c.record("names", "ok", start)
	c.logger.Debug("fetched catalog name listing",
		zap.Int("offset", offset),
		zap.Int("count", len(names)),
		zap.Int("total", payload.Count),
	)
	return names, payload.Count, nil
}

func (c *Client) record(op, outcome string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamCall(op, outcome, time.Since(start))
	}
}

// classifyTransport maps transport-level failures onto the error taxonomy.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}
	return fmt.Errorf("catalog: remote call failed: %w", err)
}
